package core

// Entity is an opaque identifier; behavior comes only from attached components
// Zero is never allocated and means "no entity"
type Entity uint64
