package dc

// @generated from dc_test.go

//go:generate go run ../scripts/gen_expects.go -- dc_test.go expects_test.go

func withDCOptions(opts ...Option) func(dcTestCase) dcTestCase {
	return func(dct dcTestCase) dcTestCase {
		return dct.withOptions(opts...)
	}
}

func withDCStack(values ...Value) func(dcTestCase) dcTestCase {
	return func(dct dcTestCase) dcTestCase {
		return dct.withStack(values...)
	}
}

func withDCPrecision(prec uint32) func(dcTestCase) dcTestCase {
	return func(dct dcTestCase) dcTestCase {
		return dct.withPrecision(prec)
	}
}

func withDCInput(input string) func(dcTestCase) dcTestCase {
	return func(dct dcTestCase) dcTestCase {
		return dct.withInput(input)
	}
}

func expectDCError(err error) func(dcTestCase) dcTestCase {
	return func(dct dcTestCase) dcTestCase {
		return dct.expectError(err)
	}
}

func expectDCTypeError(op string) func(dcTestCase) dcTestCase {
	return func(dct dcTestCase) dcTestCase {
		return dct.expectTypeError(op)
	}
}

func expectDCStack(values ...string) func(dcTestCase) dcTestCase {
	return func(dct dcTestCase) dcTestCase {
		return dct.expectStack(values...)
	}
}

func expectDCNumbers(values ...string) func(dcTestCase) dcTestCase {
	return func(dct dcTestCase) dcTestCase {
		return dct.expectNumbers(values...)
	}
}

func expectDCPrecision(prec uint32) func(dcTestCase) dcTestCase {
	return func(dct dcTestCase) dcTestCase {
		return dct.expectPrecision(prec)
	}
}

func expectDCOutput(output string) func(dcTestCase) dcTestCase {
	return func(dct dcTestCase) dcTestCase {
		return dct.expectOutput(output)
	}
}

func expectDCDump(dump string) func(dcTestCase) dcTestCase {
	return func(dct dcTestCase) dcTestCase {
		return dct.expectDump(dump)
	}
}
