// Command vertexvm2 decodes a WebAssembly 2.0 binary and invokes one of its
// exported functions with integer arguments taken from the command line.
// It exists to manually exercise the engine end to end; it is not a
// general-purpose wasm runtime CLI (no WASI, no .wat support).
package main

import (
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/vertexdlt/vertexvm2/vm"
	"github.com/vertexdlt/vertexvm2/wasm"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s <module.wasm> <export> [args...]\n", os.Args[0])
	os.Exit(1)
}

// envResolver answers every env.* import with a logging stub, grounded on
// the teacher's main.go Resolver (which did the same for a fixed set of
// storage/syscall host functions specific to its order-matching demo).
type envResolver struct{ log *zap.Logger }

func (r *envResolver) Resolve(module, field string) (vm.Extern, bool) {
	if module != "env" {
		return vm.Extern{}, false
	}
	fn := vm.NewHostFunc(wasm.FuncType{}, func(args []vm.Value) ([]vm.Value, error) {
		r.log.Info("host import called", zap.String("field", field))
		return nil, nil
	})
	return vm.Extern{Kind: wasm.ExternFunc, Func: fn}, true
}

func main() {
	if len(os.Args) < 3 {
		usage()
	}
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()
	vm.SetLogger(logger)

	path, export, argStrs := os.Args[1], os.Args[2], os.Args[3:]

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Fatal("read module", zap.Error(err))
	}
	module, err := wasm.Decode(data)
	if err != nil {
		logger.Fatal("decode module", zap.Error(err))
	}

	store := vm.NewStore()
	inst, err := vm.Instantiate(store, module, &envResolver{log: logger})
	if err != nil {
		logger.Fatal("instantiate module", zap.Error(err))
	}

	args := make([]vm.Value, len(argStrs))
	for i, s := range argStrs {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			logger.Fatal("parse argument", zap.String("arg", s), zap.Error(err))
		}
		args[i] = vm.I64Val(n)
	}

	results, err := inst.Invoke(export, args...)
	if err != nil {
		logger.Fatal("invoke export", zap.String("export", export), zap.Error(err))
	}
	for _, r := range results {
		fmt.Println(r.I64())
	}
}
