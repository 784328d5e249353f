//go:build ignore

package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	if err := entc.Generate("./schema", &gen.Config{
		Target:  "./generated",
		Package: "github.com/memedex/memedex/internal/ent/generated",
		Features: []gen.Feature{
			gen.FeatureUpsert,
		},
	}); err != nil {
		log.Fatalf("running ent codegen: %v", err)
	}
}
