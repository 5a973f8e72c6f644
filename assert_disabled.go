//go:build !assert_enabled

package main

func Assert(bool) {}

func Assertf(bool, string, ...any) {}
