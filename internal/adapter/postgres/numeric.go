package postgres

import (
	"fmt"
	"math/big"

	"github.com/jackc/pgx/v5/pgtype"
)

// Amounts and counters are uint64 in the domain and NUMERIC(20,0) in the
// database, since BIGINT cannot hold the upper half of the range.

func numeric(v uint64) pgtype.Numeric {
	return pgtype.Numeric{Int: new(big.Int).SetUint64(v), Valid: true}
}

var ten = big.NewInt(10)

func toUint64(n pgtype.Numeric) (uint64, error) {
	if !n.Valid || n.NaN || n.InfinityModifier != pgtype.Finite || n.Int == nil {
		return 0, fmt.Errorf("numeric is not a finite value")
	}
	v := new(big.Int).Set(n.Int)
	switch {
	case n.Exp > 0:
		v.Mul(v, new(big.Int).Exp(ten, big.NewInt(int64(n.Exp)), nil))
	case n.Exp < 0:
		rem := new(big.Int)
		v.QuoRem(v, new(big.Int).Exp(ten, big.NewInt(int64(-n.Exp)), nil), rem)
		if rem.Sign() != 0 {
			return 0, fmt.Errorf("numeric %s has a fractional part", n.Int)
		}
	}
	if !v.IsUint64() {
		return 0, fmt.Errorf("numeric %s out of uint64 range", v)
	}
	return v.Uint64(), nil
}
