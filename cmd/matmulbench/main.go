// Command matmulbench loads two Matrix Market files, estimates the
// nonzero count of their Boolean product without materializing it, then
// runs both multiplication kernels and reports their output sizes.
//
// Usage:
//
//	matmulbench A.mtx B.mtx [epsilon]
//
// epsilon defaults to 0.1 when omitted.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/IrakliGurgenidze/Matmul/estimate"
	"github.com/IrakliGurgenidze/Matmul/hashctx"
	"github.com/IrakliGurgenidze/Matmul/kernel"
	"github.com/IrakliGurgenidze/Matmul/sparse"
)

func main() {
	if len(os.Args) < 3 {
		log.Fatalf("usage: matmulbench A.mtx B.mtx [epsilon]")
	}

	epsilon := 0.1
	if len(os.Args) >= 4 {
		var err error
		epsilon, err = strconv.ParseFloat(os.Args[3], 64)
		if err != nil {
			log.Fatalf("parse epsilon: %v", err)
		}
	}

	// 1) Load both operands in both representations: hashed COO feeds the
	// estimator, CSR feeds the naive kernel.
	hc, err := hashctx.NewWithSeeds(12345, 67890)
	if err != nil {
		log.Fatalf("init hash context: %v", err)
	}

	aCOO, err := sparse.LoadCOOFromMTX(os.Args[1], hc)
	if err != nil {
		log.Fatalf("load %s: %v", os.Args[1], err)
	}
	bCOO, err := sparse.LoadCOOFromMTX(os.Args[2], hc)
	if err != nil {
		log.Fatalf("load %s: %v", os.Args[2], err)
	}

	aCSR, err := sparse.NewCSRFromCOO(aCOO)
	if err != nil {
		log.Fatalf("convert %s to CSR: %v", os.Args[1], err)
	}
	bCSR, err := sparse.NewCSRFromCOO(bCOO)
	if err != nil {
		log.Fatalf("convert %s to CSR: %v", os.Args[2], err)
	}

	// 2) Estimate the product size before computing it.
	est, err := estimate.EstimateProductSize(aCOO.HashedCoords(), bCOO.HashedCoords(), epsilon)
	if err != nil {
		log.Fatalf("estimate product size: %v", err)
	}
	fmt.Printf("estimated |A*B|_0 ~= %.0f (epsilon=%.2f)\n", est, epsilon)

	// 3) Run both kernels and report their actual output sizes.
	naive, err := kernel.NaiveMatmul(aCSR, bCSR)
	if err != nil {
		log.Fatalf("naive matmul: %v", err)
	}
	fmt.Printf("naive matmul:           |A*B|_0 = %d\n", naive.NNZ())

	sized, err := kernel.EstimatorSizedMatmulCSR(aCOO, bCOO, epsilon)
	if err != nil {
		log.Fatalf("estimator-sized matmul: %v", err)
	}
	fmt.Printf("estimator-sized matmul: |A*B|_0 = %d\n", sized.NNZ())
}
