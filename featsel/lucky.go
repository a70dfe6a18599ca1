package featsel

import (
	"github.com/micboat/autofeat/tables"
	"go-ml.dev/pkg/zorros"
)

/*
LuckySelect selects features and throws any occurred error as a panic
*/
func LuckySelect(df *tables.Table, target []float64, opt Options) []string {
	cols, err := Select(df, target, opt)
	if err != nil {
		panic(zorros.Panic(err))
	}
	return cols
}
