package psa_test

import (
	"fmt"

	"github.com/cwbudde/algo-pulse/dsp/core"
	"github.com/cwbudde/algo-pulse/dsp/signal"
	"github.com/cwbudde/algo-pulse/measure/psa"
)

func ExampleExtract() {
	axis, _ := core.Linspace(0, 100, 500)
	w, _ := signal.NewGenerator().Pulse(axis, 20, 1.0, 2.0, 0)

	f, err := psa.Extract(axis, w)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("peak=%.4f rise=%.3f area=%.3f fwhm=%.3f chi=%.5f\n",
		f.Peak, f.RiseTime, f.Area, f.FWHM, f.ChiSq)

	// Output:
	// peak=0.3678 rise=1.002 area=2.000 fwhm=4.609 chi=0.00315
}

func ExampleFeatures_Vector() {
	axis, _ := core.Linspace(0, 100, 500)

	f, _ := psa.Extract(axis, make([]float64, axis.Len()))
	switch f.Kind {
	case psa.KindDegenerate:
		fmt.Println("no pulse:", f.Vector())
	case psa.KindMeasured:
		fmt.Println("measured:", f.Vector())
	}

	// Output:
	// no pulse: [0 0 0 0]
}
