package qsim

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestGateKind(t *testing.T) {
	Convey("Given the editor symbols", t, func() {
		symbols := map[string]GateKind{
			"H":    Hadamard,
			"x":    PauliX,
			" Y ":  PauliY,
			"z":    PauliZ,
			"CNOT": CNOT,
			"cx":   CNOT,
			"M":    Measure,
		}

		Convey("Each should parse to its kind", func() {
			for symbol, want := range symbols {
				kind, err := ParseGateKind(symbol)
				So(err, ShouldBeNil)
				So(kind, ShouldEqual, want)
			}
		})

		Convey("Kinds should print their symbol", func() {
			So(Hadamard.String(), ShouldEqual, "H")
			So(CNOT.String(), ShouldEqual, "CNOT")
			So(Measure.String(), ShouldEqual, "M")
			So(GateKind(9).String(), ShouldEqual, "GateKind(9)")
		})

		Convey("Unknown symbols should fail", func() {
			_, err := ParseGateKind("SWAP")
			So(errors.Is(err, ErrUnknownGate), ShouldBeTrue)
		})
	})
}

func TestGateOp(t *testing.T) {
	Convey("Given a CNOT op", t, func() {
		op := GateOp{Kind: CNOT, Qubit: 2, Control: 0}

		So(op.References(2), ShouldBeTrue)
		So(op.References(0), ShouldBeTrue)
		So(op.References(1), ShouldBeFalse)
		So(op.String(), ShouldEqual, "CNOT(q0 -> q2)")
	})

	Convey("Given a single qubit op", t, func() {
		op := GateOp{Kind: PauliY, Qubit: 1, Control: NoControl}

		So(op.References(1), ShouldBeTrue)
		So(op.References(NoControl), ShouldBeFalse)
		So(op.String(), ShouldEqual, "Y(q1)")
	})

	Convey("Given an op of an unknown kind", t, func() {
		op := GateOp{Kind: GateKind(7), Qubit: 0}
		sv := NewStateVector(1)

		err := contractViolation(func() { op.apply(sv) })
		So(errors.Is(err, ErrUnknownGate), ShouldBeTrue)
	})

	Convey("Given a measure op", t, func() {
		sv := NewStateVector(1, WithRand(testRand()))
		sv.PauliX(0)

		outcome, measured := GateOp{Kind: Measure, Qubit: 0}.apply(sv)
		So(measured, ShouldBeTrue)
		So(outcome, ShouldEqual, 1)

		_, measured = GateOp{Kind: PauliZ, Qubit: 0}.apply(sv)
		So(measured, ShouldBeFalse)
	})
}
