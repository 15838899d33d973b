package domain

// Signature is an opaque transaction signature used as a history cursor.
type Signature string

func (s Signature) String() string {
	return string(s)
}

// SignatureInfo is one entry from a signature history page.
// Pages are ordered newest to oldest.
type SignatureInfo struct {
	Signature Signature `json:"signature"`
	Slot      uint64    `json:"slot"`
	BlockTime *int64    `json:"blockTime"`
	Err       any       `json:"err"`
}

// TransactionDetail holds the fields of a fetched transaction this tool
// cares about. BlockTime is nil when the node did not record one.
type TransactionDetail struct {
	Slot      uint64 `json:"slot"`
	BlockTime *int64 `json:"blockTime"`
}
