package eval

import (
	"reflect"
	"testing"
)

func TestEnv(t *testing.T) {
	env := NewEnv()
	if env.Len() != 0 {
		t.Fatalf("new env has %d bindings", env.Len())
	}
	if _, ok := env.Lookup("a"); ok {
		t.Fatal("lookup of unbound name succeeded")
	}

	env.Set("b", Int(1))
	env.Set("a", Float(2.5))
	env.Set("b", Int(3))

	if v, ok := env.Lookup("b"); !ok || v != Int(3) {
		t.Errorf("b = %v, %v; want 3", v, ok)
	}
	if v, ok := env.Lookup("a"); !ok || v != Float(2.5) {
		t.Errorf("a = %v, %v; want 2.5", v, ok)
	}
	if env.Len() != 2 {
		t.Errorf("Len() = %d, want 2", env.Len())
	}
	if got := env.Names(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Names() = %v", got)
	}
}
