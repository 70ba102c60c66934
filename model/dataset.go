package model

import (
	"github.com/go-ml-lab/harboost/dataset"
)

/*
Dataset is an abstraction of some source of a data to feed hungry models
*/
type Dataset struct {
	Train   dataset.Split // features and zero-based labels to fit
	Test    dataset.Split // optional, per-round diagnostic monitoring only
	Classes int           // class count C; labels live in [0,C)
}

// HasTest reports whether a validation split was provided.
func (ds Dataset) HasTest() bool {
	return ds.Test.X != nil
}
