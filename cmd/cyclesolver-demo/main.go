// Package main finds the highest-order cycle combinations for an NxNxN
// Rubik's-cube-style puzzle using cyclesolver's combinatorial search.
//
// Usage:
//
//	cyclesolver-demo [cube-size] [num-cycles]
//
// cube-size defaults to 3, num-cycles (the number of mutually commuting
// elements to search for) defaults to 1.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"

	"github.com/gitrdm/cyclesolver/pkg/cycles"
	"github.com/gitrdm/cyclesolver/puzzledefs"
)

func main() {
	cubeSize := 3
	if len(os.Args) > 1 {
		if parsed, err := strconv.Atoi(os.Args[1]); err == nil && parsed >= 2 {
			cubeSize = parsed
		}
	}

	numCycles := 1
	if len(os.Args) > 2 {
		if parsed, err := strconv.Atoi(os.Args[2]); err == nil && parsed >= 1 {
			numCycles = parsed
		}
	}

	fmt.Printf("=== Highest-order cycle search: %dx%dx%d cube, %d cycles ===\n\n", cubeSize, cubeSize, cubeSize, numCycles)

	def, err := puzzledefs.Cube(cubeSize)
	if err != nil {
		log.Fatalf("building puzzle definition: %v", err)
	}

	logger := log.New(os.Stderr, "cyclesolver: ", log.LstdFlags)
	driver := cycles.NewDriver(def, numCycles, cycles.WithLogger(logger), cycles.WithWorkerCount(1))

	frontier, err := driver.Run(context.Background())
	if err != nil {
		log.Fatalf("search failed: %v", err)
	}

	sort.Slice(frontier, func(i, j int) bool {
		return frontier[i].OrderProduct.Cmp(frontier[j].OrderProduct) > 0
	})

	fmt.Printf("Pareto frontier: %d combinations\n\n", len(frontier))
	for i, combo := range frontier {
		if i >= 10 {
			fmt.Printf("... and %d more\n", len(frontier)-i)
			break
		}
		fmt.Printf("order_product=%s used_cubie_counts=%v cycle_orders=%v\n",
			combo.OrderProduct, combo.UsedCubieCounts, cycleOrders(combo))
	}

	fmt.Println("\nCycle-order histogram:")
	hist := cycles.CycleOrderHistogram(frontier)
	keys := make([]string, 0, len(hist))
	for k := range hist {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %s: %d\n", k, hist[k])
	}
}

func cycleOrders(combo cycles.CycleCombination) []string {
	orders := make([]string, len(combo.Cycles))
	for i, c := range combo.Cycles {
		orders[i] = c.Order.String()
	}
	return orders
}
