//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
)

func InitializeApp() (*App, error) {
	panic(wire.Build(Live))
}
