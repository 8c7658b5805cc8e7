package models

import "fmt"

var InvalidInputErr = fmt.Errorf("invalid input")
var NoConvergenceErr = fmt.Errorf("solver did not converge")
var SymbolNotFoundErr = fmt.Errorf("symbol not found")
