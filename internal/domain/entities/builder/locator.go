package builder

// DefaultMaxDepth caps tree recursion. The model is a tree so no cycle
// detection is needed, but corrupted input must still terminate.
const DefaultMaxDepth = 256

// FindComponentByID resolves a DOM element id back to its ComponentNode via
// pre-order depth-first search across the given roots. Each node is resolved
// through the legacy wrapper indirection before matching, so a node wrapped
// as {component: inner} and a bare inner node behave identically. Returns nil
// when no node carries the id.
func FindComponentByID(roots []*ComponentNode, targetID string) *ComponentNode {
	return FindComponentByIDDepth(roots, targetID, DefaultMaxDepth)
}

// FindComponentByIDDepth is FindComponentByID with an explicit depth cap.
func FindComponentByIDDepth(roots []*ComponentNode, targetID string, maxDepth int) *ComponentNode {
	if targetID == "" || maxDepth <= 0 {
		return nil
	}

	for _, node := range roots {
		if node == nil {
			continue
		}

		eff := node.Effective()
		if eff == nil {
			continue
		}

		if eff.Attributes != nil && eff.Attributes["id"] == targetID {
			return eff
		}

		if found := FindComponentByIDDepth(eff.Components, targetID, maxDepth-1); found != nil {
			return found
		}
	}

	return nil
}

// FindInProject searches every frame of every page, in document order.
func FindInProject(project *ProjectData, targetID string) *ComponentNode {
	if project == nil {
		return nil
	}
	return FindComponentByID(project.Roots(), targetID)
}
