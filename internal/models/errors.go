package models

import "errors"

// ErrUnknownOperationKind indicates a caller defect: the operation kind
// is outside create/update/delete. Never swallowed by the sync engine.
var ErrUnknownOperationKind = errors.New("unknown operation kind")
