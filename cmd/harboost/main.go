/*
Command harboost runs the HAR evaluation pipeline over prepared train/test
artifacts: load and validate the splits, project the training features
onto principal components for diagnostics, train the tree and linear
boosters with the externally tuned hyperparameters, and report accuracy,
multi-class log-loss and confusion matrices on the test split.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go-ml.dev/pkg/zorros/zlog"

	"github.com/go-ml-lab/harboost/boost"
	"github.com/go-ml-lab/harboost/dataset"
	"github.com/go-ml-lab/harboost/eval"
	"github.com/go-ml-lab/harboost/model"
	"github.com/go-ml-lab/harboost/pca"
	"github.com/go-ml-lab/harboost/tables"
	"github.com/go-ml-lab/harboost/viz"
)

// the six HAR activity classes in their source 1-based order
const harActivities = "WALKING,WALKING_UPSTAIRS,WALKING_DOWNSTAIRS,SITTING,STANDING,LAYING"

var (
	dataPath   = flag.String("data", "", "single feature table with an is-train indicator column, instead of -train/-test")
	indicator  = flag.String("indicator", "istrain", "boolean is-train column of -data")
	trainPath  = flag.String("train", "train.csv", "training feature table (csv or csv.xz)")
	testPath   = flag.String("test", "test.csv", "test feature table (csv or csv.xz)")
	sqlitePath = flag.String("sqlite", "", "read feature tables from this sqlite database instead of csv")
	trainTable = flag.String("train-table", "train", "sqlite table with the training split")
	testTable  = flag.String("test-table", "test", "sqlite table with the test split")
	labelCol   = flag.String("label", "activity", "label column inside the feature tables")
	trainYPath = flag.String("train-labels", "", "separate training label list, overrides -label")
	testYPath  = flag.String("test-labels", "", "separate test label list, overrides -label")
	namesPath  = flag.String("names", "", "feature-name lookup csv (id,name)")
	classNames = flag.String("class-names", harActivities, "comma-separated class names, 1-based order")
	classes    = flag.Int("classes", 6, "class count")
	base       = flag.Int("base", 1, "first label value of the source encoding")
	rounds     = flag.Int("rounds", 100, "tree booster rounds")
	linRounds  = flag.Int("linear-rounds", 100, "linear booster rounds")
	verbose    = flag.Bool("verbose", false, "log per-round metrics")

	// externally tuned hyperparameters of the tree booster
	eta       = flag.Float64("eta", 0.1, "shrinkage per round")
	maxDepth  = flag.Int("max-depth", 6, "maximum tree depth")
	minChild  = flag.Float64("min-child-weight", 1, "minimum hessian mass per leaf")
	subsample = flag.Float64("subsample", 0.9, "row subsampling fraction per round")
	colsample = flag.Float64("colsample", 0.8, "feature subsampling fraction per tree")
	lambda    = flag.Float64("lambda", 1, "L2 regularization on leaf weights")
	gamma     = flag.Float64("gamma", 0, "minimum split gain")
	seed      = flag.Int64("seed", 42, "subsampling seed")

	// externally tuned hyperparameters of the linear booster
	linEta    = flag.Float64("linear-eta", 0.5, "linear booster learning rate")
	linLambda = flag.Float64("linear-lambda", 0.001, "linear booster L2 regularization")
	linAlpha  = flag.Float64("linear-alpha", 0.0001, "linear booster L1 regularization")
)

func main() {
	flag.Parse()

	ds, names := load()
	components(ds)

	treeParams := model.Params{
		"eta": *eta, "max_depth": float64(*maxDepth), "min_child_weight": *minChild,
		"subsample": *subsample, "colsample_bytree": *colsample,
		"lambda": *lambda, "gamma": *gamma, "seed": float64(*seed),
	}
	linParams := model.Params{"eta": *linEta, "lambda": *linLambda, "alpha": *linAlpha}
	runs := []struct {
		name    string
		booster model.HungryModel
		rounds  int
	}{
		{"tree booster", boost.NewTreeBooster(*classes, *rounds, treeParams), *rounds},
		{"linear booster", boost.NewLinearBooster(*classes, *linRounds, linParams), *linRounds},
	}
	for _, r := range runs {
		pred, rep := r.booster.Feed(ds).LuckyTrain(training(r.rounds))
		report(r.name, pred, rep, ds)
		if tm, ok := pred.(*boost.TreeModel); ok {
			if err := viz.GainBars(tm.GainImportance(), names, 10, "gain-top10.png"); err != nil {
				die(err)
			}
		}
	}
}

func training(rounds int) model.Training {
	t := model.Training{
		Iterations: rounds,
		Metrics:    model.Classification{Classes: *classes},
	}
	if *verbose {
		t.Verbose = func(s string) { zlog.Info(s) }
	}
	return t
}

func load() (model.Dataset, dataset.NameTable) {
	var trainX, testX *tables.Matrix
	var trainY, testY []int
	if *dataPath != "" {
		m, err := dataset.ReadCSVFile(*dataPath)
		if err != nil {
			die(err)
		}
		var a, b *tables.Matrix
		if a, b, err = dataset.SplitIndicator(m, *indicator); err != nil {
			die(err)
		}
		trainX, trainY = popLabels(a)
		testX, testY = popLabels(b)
	} else {
		trainX, trainY = split(*trainPath, *trainTable, *trainYPath)
		testX, testY = split(*testPath, *testTable, *testYPath)
	}
	if err := dataset.CheckSchema(trainX, testX); err != nil {
		die(err)
	}
	train, err := dataset.Pair(trainX, trainY)
	if err != nil {
		die(err)
	}
	test, err := dataset.Pair(testX, testY)
	if err != nil {
		die(err)
	}
	var names dataset.NameTable
	if *namesPath != "" {
		if names, err = dataset.ReadNamesFile(*namesPath); err != nil {
			die(err)
		}
		if _, err = names.Resolve(trainX.Names); err != nil {
			die(err)
		}
	}
	zlog.Info(fmt.Sprintf("loaded %v train and %v test samples, %v features",
		trainX.Rows, testX.Rows, trainX.Cols))
	return model.Dataset{Train: train, Test: test, Classes: *classes}, names
}

// split loads one partition's features and zero-based labels.
func split(path, table, labelsPath string) (*tables.Matrix, []int) {
	var x *tables.Matrix
	var err error
	if *sqlitePath != "" {
		x, err = dataset.FromSQLite(*sqlitePath, table)
	} else {
		x, err = dataset.ReadCSVFile(path)
	}
	if err != nil {
		die(err)
	}
	if labelsPath == "" {
		return popLabels(x)
	}
	raw, err := dataset.ReadLabels(labelsPath, "")
	if err != nil {
		die(err)
	}
	return x, remap(raw)
}

// popLabels drops the label column off a feature table and remaps it
// into the zero-based training domain.
func popLabels(x *tables.Matrix) (*tables.Matrix, []int) {
	col, err := x.Col(*labelCol)
	if err != nil {
		die(err)
	}
	if x, err = x.Drop(*labelCol); err != nil {
		die(err)
	}
	raw, err := dataset.ToLabels(col)
	if err != nil {
		die(err)
	}
	return x, remap(raw)
}

func remap(raw []int) []int {
	y, err := dataset.Remap(raw, *base, *classes)
	if err != nil {
		die(err)
	}
	return y
}

func components(ds model.Dataset) {
	p, err := pca.Project(ds.Train.X, 3)
	if err != nil {
		die(err)
	}
	for i, v := range p.Explained {
		zlog.Info(fmt.Sprintf("PC%v explains %.2f%% of the variance", i+1, 100*v))
	}
	activities := strings.Split(*classNames, ",")
	if err = viz.ScatterComponents(p, ds.Train.Y, activities, 0, 1, "pc1-pc2.png"); err != nil {
		die(err)
	}
	if err = viz.ScatterComponents(p, ds.Train.Y, activities, 0, 2, "pc1-pc3.png"); err != nil {
		die(err)
	}
}

func report(title string, m model.Predictor, r *model.Report, ds model.Dataset) {
	res, err := eval.Evaluate(m, ds.Test.X, ds.Test.Y)
	if err != nil {
		die(err)
	}
	fmt.Printf("\n%s (%v rounds, best diagnostic round %v)\n", title, r.History.Rows, r.TheBest)
	fmt.Printf("accuracy: %.5f\n", res.Accuracy)
	fmt.Printf("log-loss: %.5f\n", res.LogLoss)
	fmt.Println(res.Confusion.Render(strings.Split(*classNames, ",")))
}

func die(err error) {
	zlog.Error(err.Error())
	os.Exit(1)
}
