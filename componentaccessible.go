package roster

// Add attaches a zero-valued component to the entity and returns it.
func (c AccessibleComponent[T]) Add(ctl Controller, entity int) (*T, error) {
	if err := ctl.AddComponent(entity, c); err != nil {
		return nil, err
	}
	arr, err := c.array(ctl, "add component", entity)
	if err != nil {
		return nil, err
	}
	return arr.slot(entity), nil
}

// Set writes value into the entity's slot, attaching the component if absent
func (c AccessibleComponent[T]) Set(ctl Controller, entity int, value T) error {
	arr, err := c.array(ctl, "set component", entity)
	if err != nil {
		return err
	}
	if !arr.occupied(entity) {
		if err := ctl.AddComponent(entity, c); err != nil {
			return err
		}
	}
	*arr.slot(entity) = value
	return nil
}

// Get returns a pointer into the storage array. It is invalidated by Reset.
func (c AccessibleComponent[T]) Get(ctl Controller, entity int) (*T, error) {
	arr, err := c.array(ctl, "get component", entity)
	if err != nil {
		return nil, err
	}
	if !arr.occupied(entity) {
		return nil, ComponentNotFoundError{Component: c, Entity: entity}
	}
	return arr.slot(entity), nil
}

func (c AccessibleComponent[T]) Has(ctl Controller, entity int) bool {
	arr, err := c.array(ctl, "has component", entity)
	if err != nil {
		return false
	}
	return arr.occupied(entity)
}

func (c AccessibleComponent[T]) Remove(ctl Controller, entity int) error {
	return ctl.RemoveComponent(entity, c)
}

func (c AccessibleComponent[T]) EnqueueRemove(ctl Controller, entity int) error {
	return ctl.EnqueueRemoveComponent(entity, c)
}

// GetFromCursor returns the component of the cursor's current entity, or nil
// when the entity does not carry it.
func (c AccessibleComponent[T]) GetFromCursor(cursor *Cursor) *T {
	_, comp := c.GetFromCursorSafe(cursor)
	return comp
}

func (c AccessibleComponent[T]) GetFromCursorSafe(cursor *Cursor) (bool, *T) {
	comp, err := c.Get(cursor.ctl, cursor.Entity())
	if err != nil {
		return false, nil
	}
	return true, comp
}

func (c AccessibleComponent[T]) array(ctl Controller, op string, entity int) (*componentArray[T], error) {
	impl, ok := ctl.(*controller)
	if !ok {
		return nil, UnsupportedControllerError{}
	}
	_, sto, err := impl.componentSlot(op, entity, c)
	if err != nil {
		return nil, err
	}
	return sto.(*componentArray[T]), nil
}
