// Package mocks provides centralized mock implementations for testing.
//
// Instead of defining inline fakes in individual test files, tests import
// the mocks here so that call tracking and canned responses behave the
// same everywhere.
//
//	gen := mocks.NewMockGeneratorWithText("Buy now!")
//	svc, _ := generation.NewService(gen, cfg, nil, nil)
//	// ... exercise svc ...
//	assert.Equal(t, 1, gen.Calls())
package mocks
