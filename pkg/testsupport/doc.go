// Package testsupport collects fixture and golden-file helpers shared by the
// package tests. Helpers taking *testing.T fail the test on error to keep
// table tests concise.
package testsupport
