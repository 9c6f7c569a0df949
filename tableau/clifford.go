package tableau

import "fmt"

// AppendX applies X(q) to every row: sign ^= z[q].
func (t *ChoiTableau) AppendX(q int) error {
	if err := t.checkCol(q); err != nil {
		return fmt.Errorf("tableau.AppendX: %w", err)
	}
	for _, r := range t.Rows {
		zq, _ := r.Z.Get(q)
		if zq {
			r.Sign = !r.Sign
		}
	}

	return nil
}

// AppendZ applies Z(q) to every row: sign ^= x[q].
func (t *ChoiTableau) AppendZ(q int) error {
	if err := t.checkCol(q); err != nil {
		return fmt.Errorf("tableau.AppendZ: %w", err)
	}
	for _, r := range t.Rows {
		xq, _ := r.X.Get(q)
		if xq {
			r.Sign = !r.Sign
		}
	}

	return nil
}

// AppendS applies S(q) to every row: sign ^= z[q]&x[q]; z[q] ^= x[q].
func (t *ChoiTableau) AppendS(q int) error {
	if err := t.checkCol(q); err != nil {
		return fmt.Errorf("tableau.AppendS: %w", err)
	}
	for _, r := range t.Rows {
		zq, _ := r.Z.Get(q)
		xq, _ := r.X.Get(q)
		if zq && xq {
			r.Sign = !r.Sign
		}
		_ = r.Z.Set(q, bxor(zq, xq))
	}

	return nil
}

// AppendV applies V(q) to every row: sign ^= (¬x[q])&z[q]; x[q] ^= z[q].
func (t *ChoiTableau) AppendV(q int) error {
	if err := t.checkCol(q); err != nil {
		return fmt.Errorf("tableau.AppendV: %w", err)
	}
	for _, r := range t.Rows {
		zq, _ := r.Z.Get(q)
		xq, _ := r.X.Get(q)
		if !xq && zq {
			r.Sign = !r.Sign
		}
		_ = r.X.Set(q, bxor(xq, zq))
	}

	return nil
}

// AppendH applies H(q), decomposed as S;V;S on q.
func (t *ChoiTableau) AppendH(q int) error {
	if err := t.AppendS(q); err != nil {
		return err
	}
	if err := t.AppendV(q); err != nil {
		return err
	}

	return t.AppendS(q)
}

// AppendY applies Y(q) to every row: sign flips wherever exactly one of
// z[q], x[q] is set (Y negates X and Z but fixes Y), realized as X(q)
// followed by Z(q).
func (t *ChoiTableau) AppendY(q int) error {
	if err := t.AppendX(q); err != nil {
		return err
	}

	return t.AppendZ(q)
}

// AppendSdg applies S†(q), decomposed as three S appends (S has order 4).
func (t *ChoiTableau) AppendSdg(q int) error {
	for i := 0; i < 3; i++ {
		if err := t.AppendS(q); err != nil {
			return err
		}
	}

	return nil
}

// AppendVdg applies V†(q), decomposed as three V appends (V has order 4).
func (t *ChoiTableau) AppendVdg(q int) error {
	for i := 0; i < 3; i++ {
		if err := t.AppendV(q); err != nil {
			return err
		}
	}

	return nil
}

// AppendCX applies CX(a,b) (control a, target b) to every row:
// sign ^= (¬z[a] ^ x[b]) & z[b] & x[a]; z[a] ^= z[b]; x[b] ^= x[a].
func (t *ChoiTableau) AppendCX(a, b int) error {
	if err := t.checkCol(a); err != nil {
		return fmt.Errorf("tableau.AppendCX: %w", err)
	}
	if err := t.checkCol(b); err != nil {
		return fmt.Errorf("tableau.AppendCX: %w", err)
	}
	for _, r := range t.Rows {
		za, _ := r.Z.Get(a)
		zb, _ := r.Z.Get(b)
		xa, _ := r.X.Get(a)
		xb, _ := r.X.Get(b)
		if bxor(!za, xb) && zb && xa {
			r.Sign = !r.Sign
		}
		_ = r.Z.Set(a, bxor(za, zb))
		_ = r.X.Set(b, bxor(xb, xa))
	}

	return nil
}

// AppendCZ applies CZ(a,b), decomposed as S(a);S(b);CX(a,b);S(b);Z(b);CX(a,b).
func (t *ChoiTableau) AppendCZ(a, b int) error {
	steps := []func() error{
		func() error { return t.AppendS(a) },
		func() error { return t.AppendS(b) },
		func() error { return t.AppendCX(a, b) },
		func() error { return t.AppendS(b) },
		func() error { return t.AppendZ(b) },
		func() error { return t.AppendCX(a, b) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	return nil
}

// AppendCY applies CY(a,b), decomposed as S(b);Z(b);CX(a,b);S(b).
func (t *ChoiTableau) AppendCY(a, b int) error {
	steps := []func() error{
		func() error { return t.AppendS(b) },
		func() error { return t.AppendZ(b) },
		func() error { return t.AppendCX(a, b) },
		func() error { return t.AppendS(b) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	return nil
}
