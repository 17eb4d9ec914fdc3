package args

import "testing"

func TestKrdantaPratipadikaRequire(t *testing.T) {
	k := &KrdantaPratipadika{Dhatu: FromMula(NewMula("kf", Tanadi)), Krt: Tfc}
	if k.RequireValue() != nil {
		t.Fatalf("RequireValue() = %v before Require called, want nil", k.RequireValue())
	}
	k.Require("kartA")
	if got := k.RequireValue(); got == nil || *got != "kartA" {
		t.Errorf("RequireValue() = %v, want \"kartA\"", got)
	}
}

func TestSamasaPadaAccessors(t *testing.T) {
	pr := NewBasic("rAma")
	pada := SamasaPada{PratipadikaValue: pr, VibhaktiValue: V1, AvyayaValue: true}
	if pada.Pratipadika() != pr {
		t.Errorf("Pratipadika() did not return the stored pointer")
	}
	if pada.Vibhakti() != V1 {
		t.Errorf("Vibhakti() = %v, want V1", pada.Vibhakti())
	}
	if !pada.IsAvyaya() {
		t.Errorf("IsAvyaya() = false, want true")
	}
}

func TestNewVakyaPadas(t *testing.T) {
	v := NewVakya(PadaFromDummy("ca"), PadaFromNipata("yena"))
	padas := v.Padas()
	if len(padas) != 2 {
		t.Fatalf("len(Padas()) = %d, want 2", len(padas))
	}
	if padas[0].Dummy == nil || *padas[0].Dummy != "ca" {
		t.Errorf("Padas()[0].Dummy = %v, want \"ca\"", padas[0].Dummy)
	}
	if padas[1].Nipata == nil || *padas[1].Nipata != "yena" {
		t.Errorf("Padas()[1].Nipata = %v, want \"yena\"", padas[1].Nipata)
	}
}
