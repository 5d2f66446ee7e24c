package device

// nextNodeID hands out process-unique device ids. The device graph is
// single-threaded by contract, so a plain counter suffices.
var nextNodeID int

func allocateNodeID() int {
	nextNodeID++
	return nextNodeID
}

// Node is the device-graph base: identity plus parent/child adjacency.
// The graph is acyclic by external invariant; traversals do not check
// for cycles.
type Node struct {
	name    string
	id      int
	parents []*StorageDevice
	kids    int
}

func (n *Node) Name() string { return n.name }

// ID is a process-unique numeric identifier, stable for the node's
// lifetime in the graph.
func (n *Node) ID() int { return n.id }

// Parents returns the immediate parent devices. The result is a copy.
func (n *Node) Parents() []*StorageDevice {
	return append([]*StorageDevice(nil), n.parents...)
}

// Ancestors returns the device itself plus every transitive parent,
// deduplicated.
func (d *StorageDevice) Ancestors() []*StorageDevice {
	seen := map[int]bool{}
	var walk func(dev *StorageDevice) []*StorageDevice
	walk = func(dev *StorageDevice) []*StorageDevice {
		if seen[dev.ID()] {
			return nil
		}
		seen[dev.ID()] = true

		result := []*StorageDevice{dev}
		for _, parent := range dev.parents {
			result = append(result, walk(parent)...)
		}
		return result
	}
	return walk(d)
}

// IsLeaf reports whether nothing depends on this device.
func (n *Node) IsLeaf() bool { return n.kids == 0 }

// Kids is the number of child devices.
func (n *Node) Kids() int { return n.kids }

func (n *Node) AddChild() { n.kids++ }

func (n *Node) RemoveChild() { n.kids-- }
