package cxxtype

// Entity walks through outer references and cv-qualifications to reach
// the underlying entity type (spec.md §4.4). It returns the entity
// handle, the merged cv of the outermost CV layer seen inside any
// reference, and which reference kind (if any) was outermost.
//
// The starting state is cv={false,false}, ref=RefNone. CV layers
// overwrite the accumulated cv rather than merging with it — the
// outermost CV layer is the user-visible qualification at that point in
// the walk, the read-side dual of the merge CVOf performs on
// construction (spec.md §9, "GetEntityInternal write-through semantics").
func (t *Type) Entity() (entity *Type, cv CV, ref RefKind) {
	t.checkOpen("Entity()")
	return t.entityInternal(CV{}, RefNone)
}

func (t *Type) entityInternal(cv CV, ref RefKind) (*Type, CV, RefKind) {
	switch t.kind {
	case KindLRef:
		return t.element.entityInternal(cv, RefLValue)
	case KindRRef:
		return t.element.entityInternal(cv, RefRValue)
	case KindCV:
		return t.element.entityInternal(t.cv, ref)
	default:
		return t, cv, ref
	}
}
