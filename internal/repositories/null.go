package repositories

import "database/sql"

// Helpers for moving between nullable columns and the pointer fields the
// domain models use for optional data.

func floatPtr(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}

func intPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

func floatArg(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

func intArg(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

func stringArg(s string) any {
	if s == "" {
		return nil
	}
	return s
}
