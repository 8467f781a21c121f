package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"

	"github.com/FlavioCFOliveira/feedforward/internal/net"
)

func main() {
	epochs := flag.Int("epochs", 10000, "training epochs")
	hidden := flag.Int("hidden", 4, "hidden layer nodes")
	lr := flag.Float64("lr", 0.5, "learning rate")
	seed := flag.Int64("seed", 42, "initialization seed")
	out := flag.String("out", "xor_network.json", "where to save the trained network")
	flag.Parse()

	fmt.Println("=== XOR Training Example ===")

	// The XOR function cannot be solved by a single-layer perceptron
	// but can be solved by a multi-layer perceptron with hidden layers
	network, err := net.New(net.Config{
		InputSize: 2,
		Layers: []net.LayerSpec{
			{Nodes: *hidden, Activation: "sigmoid"},
			{Nodes: 1, Activation: "sigmoid"},
		},
		LearningRate: *lr,
		Rand:         rand.New(rand.NewSource(*seed)),
	})
	if err != nil {
		log.Fatalf("Failed to build network: %v", err)
	}
	network.Summary(os.Stdout)

	ds := &net.Dataset{
		Samples: [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
		Labels:  [][]float64{{0}, {1}, {1}, {0}},
	}

	if _, err := network.Fit(ds, *epochs, net.Logger{Interval: *epochs / 10}); err != nil {
		log.Fatalf("Training failed: %v", err)
	}

	fmt.Println("\nTesting trained network:")
	for i, x := range ds.Samples {
		pred, err := network.Predict(x)
		if err != nil {
			log.Fatalf("Predict failed: %v", err)
		}
		fmt.Printf("Input: %v, Predicted: %.4f, Target: %v\n", x, pred[0], ds.Labels[i][0])
	}

	fmt.Printf("\nSaving network to %s...\n", *out)
	if err := network.Save(*out); err != nil {
		log.Fatalf("Error saving network: %v", err)
	}

	loaded, err := net.Load(*out, nil)
	if err != nil {
		log.Fatalf("Error loading network: %v", err)
	}

	fmt.Println("Verifying loaded network:")
	allMatch := true
	for _, x := range ds.Samples {
		a, _ := network.Predict(x)
		b, _ := loaded.Predict(x)
		match := "OK"
		if math.Abs(a[0]-b[0]) > 1e-12 {
			match = "MISMATCH"
			allMatch = false
		}
		fmt.Printf("Input: %v, Original: %.4f, Loaded: %.4f [%s]\n", x, a[0], b[0], match)
	}
	if !allMatch {
		fmt.Println("\nFAILURE: Predictions differ between original and loaded network!")
		os.Exit(1)
	}
	fmt.Println("\nSUCCESS: All predictions match between original and loaded network!")
}
