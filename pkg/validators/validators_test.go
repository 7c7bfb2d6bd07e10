package validators

import "testing"

func TestIsNonNegativeInteger(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"0", true},
		{"1600", true},
		{"007", true},
		{"99999999999999999999999", true},
		{"", false},
		{"-1", false},
		{"+1", false},
		{"1.0", false},
		{" 12", false},
		{"12 ", false},
		{"1e3", false},
		{"abc", false},
		{"١٢", false},
	}
	for _, tc := range cases {
		if got := IsNonNegativeInteger(tc.in); got != tc.want {
			t.Errorf("IsNonNegativeInteger(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestIsFloat(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"3.14", true},
		{"-0.0", true},
		{"0", true},
		{"+2.5", true},
		{"1e-3", true},
		{"-4E2", true},
		{".5", true},
		{"5.", true},
		{"1e400", true},
		{"inf", true},
		{"NaN", true},
		{"abc", false},
		{"", false},
		{"1.2.3", false},
		{"1,5", false},
		{" 1.0", true},
		{"2.5\n", true},
		{"\t-3 ", true},
		{"   ", false},
		{"0x1p3", false},
		{"-0X1P-2", false},
		{"1_000.5", true},
		{"1__0", false},
		{"_1", false},
		{"1_", false},
		{"1_.5", false},
		{"--1", false},
	}
	for _, tc := range cases {
		if got := IsFloat(tc.in); got != tc.want {
			t.Errorf("IsFloat(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestIsFOV(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"0.0", true},
		{"0", true},
		{"25.0", true},
		{"179.999", true},
		{"180.0", false},
		{"180", false},
		{"200", false},
		{"-1.0", false},
		{"-0.0", true},
		{"nan", false},
		{"inf", false},
		{"wide", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsFOV(tc.in); got != tc.want {
			t.Errorf("IsFOV(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestIsObjFilename(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"sphere.obj", true},
		{"SPHERE.OBJ", true},
		{"Teapot.Obj", true},
		{".obj", true},
		{"a.b.obj", false},
		{"my.model.obj", false},
		{"sphere.stl", false},
		{"sphere", false},
		{"sphere.obj.bak", false},
		{"sphereobj", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsObjFilename(tc.in); got != tc.want {
			t.Errorf("IsObjFilename(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
