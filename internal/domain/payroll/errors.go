package payroll

import "errors"

var (
	ErrPayrollRecordNotFound = errors.New("payroll record not found")
	ErrInvalidMonth          = errors.New("invalid pay month, expected MM-YYYY")
	ErrNothingToGenerate     = errors.New("no employees matched the generation request")
)
