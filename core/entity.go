package core

// Entity is a unique identifier for an entity, zero is never issued
type Entity uint64

// NoEntity is the sentinel for "no entity"
const NoEntity Entity = 0
