package builder

// Tree mutation helpers for the editor sessions. All of them resolve legacy
// wrapper indirection the same way the locator does, so an edit addressed at
// a wrapper lands on the node the wrapper stands for.

// InsertComponent attaches node under the parent with the given id at the
// given child index. An index out of range appends. It returns false when
// the parent cannot be found.
func InsertComponent(project *ProjectData, parentID string, index int, node *ComponentNode) bool {
	if project == nil || node == nil {
		return false
	}
	parent := FindInProject(project, parentID)
	if parent == nil {
		return false
	}
	parent = parent.Effective()
	node.Normalize()

	children := parent.Components
	if index < 0 || index > len(children) {
		index = len(children)
	}
	children = append(children, nil)
	copy(children[index+1:], children[index:])
	children[index] = node
	parent.Components = children
	return true
}

// ReplaceComponent swaps the tree node carrying the replacement's id for the
// replacement. Root frames are replaceable too. It returns false when no
// node carries that id.
func ReplaceComponent(project *ProjectData, replacement *ComponentNode) bool {
	if project == nil || replacement == nil {
		return false
	}
	id := replacement.Normalize().Effective().ID()
	if id == "" {
		return false
	}

	for pi := range project.Pages {
		frames := project.Pages[pi].Frames
		for fi, frame := range frames {
			if nodeID(frame) == id {
				frames[fi] = replacement
				return true
			}
			if replaceInChildren(frame, id, replacement) {
				return true
			}
		}
	}
	return false
}

// RemoveComponent detaches the node with the given id from the tree. It
// returns false when no node carries that id.
func RemoveComponent(project *ProjectData, id string) bool {
	if project == nil || id == "" {
		return false
	}

	for pi := range project.Pages {
		frames := project.Pages[pi].Frames
		for fi, frame := range frames {
			if nodeID(frame) == id {
				project.Pages[pi].Frames = append(frames[:fi], frames[fi+1:]...)
				return true
			}
			if removeFromChildren(frame, id) {
				return true
			}
		}
	}
	return false
}

func nodeID(n *ComponentNode) string {
	if n == nil {
		return ""
	}
	eff := n.Effective()
	if eff == nil {
		return ""
	}
	return eff.ID()
}

func replaceInChildren(n *ComponentNode, id string, replacement *ComponentNode) bool {
	if n == nil {
		return false
	}
	eff := n.Effective()
	if eff == nil {
		return false
	}
	for i, child := range eff.Components {
		if nodeID(child) == id {
			eff.Components[i] = replacement
			return true
		}
		if replaceInChildren(child, id, replacement) {
			return true
		}
	}
	return false
}

func removeFromChildren(n *ComponentNode, id string) bool {
	if n == nil {
		return false
	}
	eff := n.Effective()
	if eff == nil {
		return false
	}
	for i, child := range eff.Components {
		if nodeID(child) == id {
			eff.Components = append(eff.Components[:i], eff.Components[i+1:]...)
			return true
		}
		if removeFromChildren(child, id) {
			return true
		}
	}
	return false
}
