// Command unitrun is a sample test binary built with the unit engine.
//
// It registers two suites, FooTest (eight methods, one of which fails on
// purpose) and BarTest (one method), and runs them with the standard
// driver. Run it with -h for the options.
package main

import (
	"oss.indeed.com/go/unitrun/driver"
	"oss.indeed.com/go/unitrun/internal/sample"
	"oss.indeed.com/go/unitrun/unit"
)

func main() {
	reg := sample.Register(unit.NewBuilder()).MustBuild()
	driver.Main(reg)
}
