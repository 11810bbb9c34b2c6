package tranche

import "github.com/rawbytedev/tranche/internal/common"

// scalarKind names the fixed-width scalars ByteCursor decodes, so table
// tests can range over them.
type scalarKind int

const (
	kindUint8 scalarKind = iota
	kindInt8
	kindUint16
	kindInt16
	kindUint32
	kindInt32
	kindUint64
	kindInt64
	kindFloat32
	kindFloat64
)

var kindNames = [...]string{
	kindUint8:   "uint8",
	kindInt8:    "int8",
	kindUint16:  "uint16",
	kindInt16:   "int16",
	kindUint32:  "uint32",
	kindInt32:   "int32",
	kindUint64:  "uint64",
	kindInt64:   "int64",
	kindFloat32: "float32",
	kindFloat64: "float64",
}

func (k scalarKind) String() string { return kindNames[k] }

func (k scalarKind) Size() int {
	switch k {
	case kindUint8, kindInt8:
		return common.Size8
	case kindUint16, kindInt16:
		return common.Size16
	case kindUint32, kindInt32, kindFloat32:
		return common.Size32
	default:
		return common.Size64
	}
}

func parseKind(s string) (scalarKind, bool) {
	for k, name := range kindNames {
		if name == s {
			return scalarKind(k), true
		}
	}
	return -1, false
}
