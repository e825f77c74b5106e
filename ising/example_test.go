// SPDX-License-Identifier: MIT

package ising_test

import (
	"fmt"

	"github.com/katalvlaran/prs/builder"
	"github.com/katalvlaran/prs/ising"
	"github.com/katalvlaran/prs/sampling"
)

func ExampleModel_SampleGibbsPerfect() {
	m, err := ising.New(builder.MustBuild(builder.Grid(8, 8)), 0.05, 0)
	if err != nil {
		panic(err)
	}
	x, err := m.SampleGibbsPerfect(sampling.WithSeed(1))
	if err != nil {
		panic(err)
	}
	fmt.Println(len(x))
	// Output: 64
}
