package model

import (
	"reflect"

	"go-ml.dev/pkg/zorros"
)

/*
Params is a set of hyper-parameters tuned externally and applied to a
model as-is; no search happens here.
*/
type Params map[string]float64

/*
Get value of the parameter by name if exists and dflt value otherwise
*/
func (p Params) Get(name string, dflt float64) float64 {
	if v, ok := p[name]; ok {
		return v
	}
	return dflt
}

/*
Apply sets model fields from params by name, failing on a parameter
the model does not have.
*/
func (p Params) Apply(m map[string]reflect.Value) {
	for k, v := range p {
		ref, ok := m[k]
		if !ok {
			panic(zorros.Panic(zorros.Errorf("model does not have field `%v`", k)))
		}
		ref.Elem().Set(reflect.ValueOf(v).Convert(ref.Type().Elem()))
	}
}
