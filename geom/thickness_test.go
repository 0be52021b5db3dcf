package geom

import "testing"

func TestThicknessClamps(t *testing.T) {
	var th Thickness

	th.SetMinLeft(5)
	th.SetLeft(2)
	if th.Left() != 5 {
		t.Errorf("Left after min 5, set 2 = %v, want 5", th.Left())
	}

	th.SetMaxLeft(10)
	th.SetLeft(20)
	if th.Left() != 10 {
		t.Errorf("Left after max 10, set 20 = %v, want 10", th.Left())
	}

	th.SetTop(20)
	th.SetRight(-3)
	th.SetBottom(1)
	if th.Top() != 20 || th.Right() != -3 || th.Bottom() != 1 {
		t.Errorf("clamp on Left leaked into other edges: %v %v %v", th.Top(), th.Right(), th.Bottom())
	}
}

func TestThicknessClampReappliesToCurrentValue(t *testing.T) {
	th := NewThickness(1, 1, 1, 1)
	th.SetMinBottom(4)
	if th.Bottom() != 4 {
		t.Errorf("Bottom = %v, want 4", th.Bottom())
	}
	th.ClearClamps()
	th.SetBottom(0)
	if th.Bottom() != 0 {
		t.Errorf("Bottom after ClearClamps = %v, want 0", th.Bottom())
	}
}

func TestThicknessApplyMin(t *testing.T) {
	th := NewThickness(1, 5, 0, 10)
	th.ApplyMin(UniformThickness(3))
	if !th.Equal(NewThickness(3, 5, 3, 10)) {
		t.Errorf("ApplyMin = %+v", th)
	}

	th.ApplyMinMax(UniformThickness(4), UniformThickness(6))
	if !th.Equal(NewThickness(4, 5, 4, 6)) {
		t.Errorf("ApplyMinMax = %+v", th)
	}
}

func TestThicknessApplyMinRespectsEdgeClamp(t *testing.T) {
	var th Thickness
	th.SetMaxTop(2)
	th.ApplyMin(UniformThickness(5))
	if th.Top() != 2 {
		t.Errorf("Top = %v, want edge max 2 to win", th.Top())
	}
	if th.Left() != 5 {
		t.Errorf("Left = %v, want 5", th.Left())
	}
}

func TestThicknessSums(t *testing.T) {
	th := NewThickness(1, 2, 3, 4)
	if th.Horizontal() != 4 || th.Vertical() != 6 {
		t.Errorf("Horizontal/Vertical = %v/%v", th.Horizontal(), th.Vertical())
	}
	if th.IsEmpty() || th.IsUniform() {
		t.Error("unexpected IsEmpty/IsUniform")
	}
	if !UniformThickness(2).IsUniform() || !(Thickness{}).IsEmpty() {
		t.Error("uniform/empty detection failed")
	}
}
