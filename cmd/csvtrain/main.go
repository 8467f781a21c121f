// Command csvtrain fits a feedforward network to a CSV dataset.
//
//	csvtrain -data iris.csv -labels 4,5,6 -header -layers 8:tanh,3:sigmoid
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/FlavioCFOliveira/feedforward/internal/net"
	"github.com/FlavioCFOliveira/feedforward/internal/schedule"
)

func main() {
	data := flag.String("data", "", "CSV file with features and labels")
	labels := flag.String("labels", "", "comma separated label column indices")
	header := flag.Bool("header", false, "skip the first CSV row")
	layers := flag.String("layers", "8:sigmoid,1:sigmoid", "comma separated nodes:activation specs")
	epochs := flag.Int("epochs", 500, "training epochs")
	lr := flag.Float64("lr", 0.1, "learning rate")
	split := flag.Float64("split", 0.8, "fraction of rows used for training")
	patience := flag.Int("patience", 0, "early stopping patience in epochs, 0 disables")
	plateau := flag.Int("plateau", 0, "halve the learning rate after this many epochs without improvement, 0 disables")
	logFile := flag.String("log", "", "optional CSV training log")
	out := flag.String("out", "model.json", "where to save the best network")
	seed := flag.Int64("seed", 1, "initialization and shuffle seed")
	flag.Parse()

	if *data == "" || *labels == "" {
		flag.Usage()
		os.Exit(2)
	}

	labelCols, err := parseInts(*labels)
	if err != nil {
		log.Fatalf("Bad -labels: %v", err)
	}
	specs, err := parseLayers(*layers)
	if err != nil {
		log.Fatalf("Bad -layers: %v", err)
	}

	ds, err := net.LoadCSV(*data, labelCols, *header)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", *data, err)
	}
	ds.Normalize()

	rng := rand.New(rand.NewSource(*seed))
	rng.Shuffle(len(ds.Samples), func(i, j int) {
		ds.Samples[i], ds.Samples[j] = ds.Samples[j], ds.Samples[i]
		ds.Labels[i], ds.Labels[j] = ds.Labels[j], ds.Labels[i]
	})
	train, test := ds.Split(*split)

	network, err := net.New(net.Config{
		InputSize:    len(ds.Samples[0]),
		Layers:       specs,
		LearningRate: *lr,
		Rand:         rng,
	})
	if err != nil {
		log.Fatalf("Failed to build network: %v", err)
	}
	network.Summary(os.Stdout)

	callbacks := []net.Callback{
		net.Logger{Interval: max(1, *epochs/20)},
		net.NewModelCheckpoint(*out),
	}
	if *patience > 0 {
		callbacks = append(callbacks, net.NewEarlyStopping(*patience, 1e-6))
	}
	if *plateau > 0 {
		sched := schedule.NewReduceLROnPlateau(network, 0.5, *plateau, 1e-6, 1e-4)
		callbacks = append(callbacks, net.NewSchedulerCallback(sched))
	}
	if *logFile != "" {
		callbacks = append(callbacks, net.NewCSVLogger(*logFile, false))
	}

	trainLoss, err := network.Fit(train, *epochs, callbacks...)
	if err != nil {
		log.Fatalf("Training failed: %v", err)
	}
	testLoss, err := network.Evaluate(test)
	if err != nil {
		log.Fatalf("Evaluation failed: %v", err)
	}
	fmt.Printf("\nTrain loss: %.6f, test loss: %.6f (%d/%d rows)\n",
		trainLoss, testLoss, len(train.Samples), len(test.Samples))
}

func parseInts(s string) ([]int, error) {
	var out []int
	for _, f := range strings.Split(s, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func parseLayers(s string) ([]net.LayerSpec, error) {
	var specs []net.LayerSpec
	for _, f := range strings.Split(s, ",") {
		nodes, act, ok := strings.Cut(strings.TrimSpace(f), ":")
		if !ok {
			return nil, fmt.Errorf("%q is not nodes:activation", f)
		}
		n, err := strconv.Atoi(nodes)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", f, err)
		}
		specs = append(specs, net.LayerSpec{Nodes: n, Activation: act})
	}
	return specs, nil
}
