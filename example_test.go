// Copyright 2025 The Rivaas Authors
// Copyright 2025 Company.info B.V.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build !integration

package typedconf_test

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"rivaas.dev/typedconf"
)

// Example demonstrates loading a typed record from explicit data.
func Example() {
	type Database struct {
		Host    string        `config:"host"`
		Port    int           `config:"port" default:"5432"`
		Timeout time.Duration `config:"timeout" default:"30s"`
	}

	db, err := typedconf.Load[Database](context.Background(),
		typedconf.WithData(map[string]any{
			"host": "db.example.com",
			"port": 5433,
		}),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(db.Host)
	fmt.Println(db.Port)
	fmt.Println(db.Timeout)

	// Output:
	// db.example.com
	// 5433
	// 30s
}

// ExampleSchemaOf demonstrates inspecting a derived schema.
func ExampleSchemaOf() {
	type Server struct {
		Host string `config:"host"`
		Port int    `config:"port" default:"8080"`
	}

	schema, err := typedconf.SchemaOf[Server]()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(schema.Name())
	for _, f := range schema.Fields() {
		fmt.Printf("%s required=%v\n", f.Name, f.Required())
	}

	// Output:
	// server
	// host required=true
	// port required=false
}

// ExampleLoad_errors demonstrates branching on the error sentinels.
func ExampleLoad_errors() {
	type Cache struct {
		TTL time.Duration `config:"ttl"`
	}

	_, err := typedconf.Load[Cache](context.Background(),
		typedconf.WithRegistry(typedconf.NewRegistry()),
	)
	if errors.Is(err, typedconf.ErrNotFound) {
		fmt.Println("no configuration source for cache")
	}

	_, err = typedconf.Load[Cache](context.Background(),
		typedconf.WithData(map[string]any{"ttl": []string{"oops"}}),
	)
	if errors.Is(err, typedconf.ErrInvalid) {
		var mismatch *typedconf.TypeMismatchError
		if errors.As(err, &mismatch) {
			fmt.Println("bad value at", mismatch.Path)
		}
	}

	// Output:
	// no configuration source for cache
	// bad value at ttl
}

// ExampleWithField demonstrates attaching a shape Go cannot declare.
func ExampleWithField() {
	type Job struct {
		Args []any `config:"args"`
	}

	schema, err := typedconf.SchemaOf[Job](
		typedconf.WithField("args", typedconf.VariadicTuple(typedconf.BasicOf[int]())),
		typedconf.WithDefault("args", []any{}),
	)
	if err != nil {
		log.Fatal(err)
	}

	err = schema.Check(map[string]any{"args": []any{1, "two", 3}})
	fmt.Println(err)

	// Output:
	// field args[1]: expected int, got string
}
