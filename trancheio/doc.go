// Package trancheio connects tranche cursors to the io package and to
// block compression. It builds on tranche; tranche never imports it, so
// code that only needs the cursors can leave this package out.
package trancheio
