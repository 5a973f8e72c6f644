//go:build js && wasm

package main

import (
	"syscall/js"
)

func getUsername() string {
	// Retrieve parameter from JavaScript global scope.
	return js.Global().Get("username").String()
}

// There is no disk in the browser. Recordings and exports are dropped.

func WriteFile(name string, data []byte) {
}

func MakeDir(name string) {
}
