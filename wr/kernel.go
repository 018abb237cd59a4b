package wr

type KernelParams struct {
	// X is the position the kernel is being evaluated at.
	X float64
	// U, GradU and Grad2U hold the value and derivatives of the trial
	// function.
	U      float64
	GradU  float64
	Grad2U float64
	// W, GradW and Grad2W hold the value and derivatives of the test
	// function.
	W      float64
	GradW  float64
	Grad2W float64
}

// Kernel is the integrand of one weighted-residual scheme.
type Kernel interface {
	// VolIntU returns the integrand of the stiffness entry coupling the test
	// function W with the trial function U.
	VolIntU(p *KernelParams) (float64, error)
	// VolInt returns the integrand of the load entry of the test function W
	// (everything that does not depend on u).
	VolInt(p *KernelParams) (float64, error)
}

// RitzKernel is the energy (variational) form
//
//	p w' u' + q w' u + r w u  with load  w f
//
// It is only equivalent to the strong form when p, q and r are constant over
// the domain; that is not checked.
type RitzKernel struct{ Op *Operator }

func (k *RitzKernel) VolIntU(p *KernelParams) (float64, error) {
	pp, qq, rr, err := coeffs(k.Op, p.X)
	if err != nil {
		return 0, err
	}
	return pp*p.GradW*p.GradU + qq*p.GradW*p.U + rr*p.W*p.U, nil
}

func (k *RitzKernel) VolInt(p *KernelParams) (float64, error) {
	f, err := k.Op.Source(p.X)
	return p.W * f, err
}

// GalerkinKernel tests with the trial functions themselves:
//
//	-p u' w' + q u w' + r u w  with load  f w
type GalerkinKernel struct{ Op *Operator }

func (k *GalerkinKernel) VolIntU(p *KernelParams) (float64, error) {
	pp, qq, rr, err := coeffs(k.Op, p.X)
	if err != nil {
		return 0, err
	}
	return -pp*p.GradU*p.GradW + qq*p.U*p.GradW + rr*p.U*p.W, nil
}

func (k *GalerkinKernel) VolInt(p *KernelParams) (float64, error) {
	f, err := k.Op.Source(p.X)
	return f * p.W, err
}

// ResidualKernel weights the strong form residual with the test function:
//
//	w L[u]  with load  w f
//
// It serves the subdomain (indicator tests) and moment (monomial tests)
// schemes.
type ResidualKernel struct{ Op *Operator }

func (k *ResidualKernel) VolIntU(p *KernelParams) (float64, error) {
	lu, err := k.Op.L(p.X, p.U, p.GradU, p.Grad2U)
	return p.W * lu, err
}

func (k *ResidualKernel) VolInt(p *KernelParams) (float64, error) {
	f, err := k.Op.Source(p.X)
	return p.W * f, err
}

// LeastSquaresKernel tests with the operator applied to the test function,
// which minimizes the L2 norm of the residual:
//
//	L[u] L[w]  with load  f L[w]
type LeastSquaresKernel struct{ Op *Operator }

func (k *LeastSquaresKernel) VolIntU(p *KernelParams) (float64, error) {
	lu, err := k.Op.L(p.X, p.U, p.GradU, p.Grad2U)
	if err != nil {
		return 0, err
	}
	lw, err := k.Op.L(p.X, p.W, p.GradW, p.Grad2W)
	return lu * lw, err
}

func (k *LeastSquaresKernel) VolInt(p *KernelParams) (float64, error) {
	f, err := k.Op.Source(p.X)
	if err != nil {
		return 0, err
	}
	lw, err := k.Op.L(p.X, p.W, p.GradW, p.Grad2W)
	return f * lw, err
}

func coeffs(op *Operator, x float64) (p, q, r float64, err error) {
	if p, err = op.P.Eval(x); err != nil {
		return 0, 0, 0, err
	}
	if q, err = op.Q.Eval(x); err != nil {
		return 0, 0, 0, err
	}
	if r, err = op.R.Eval(x); err != nil {
		return 0, 0, 0, err
	}
	return p, q, r, nil
}
