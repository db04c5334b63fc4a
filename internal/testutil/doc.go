// Package testutil provides test doubles shared by package tests.
package testutil
