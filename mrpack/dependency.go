package mrpack

// DependencyID names a pack dependency. The known loaders have display
// names; anything else passes through untouched.
type DependencyID string

const (
	DependencyMinecraft    DependencyID = "minecraft"
	DependencyForge        DependencyID = "forge"
	DependencyNeoForge     DependencyID = "neoforge"
	DependencyFabricLoader DependencyID = "fabric-loader"
	DependencyQuiltLoader  DependencyID = "quilt-loader"
)

func (id DependencyID) String() string {
	switch id {
	case DependencyMinecraft:
		return "Minecraft"
	case DependencyForge:
		return "Forge"
	case DependencyNeoForge:
		return "NeoForge"
	case DependencyFabricLoader:
		return "Fabric"
	case DependencyQuiltLoader:
		return "Quilt"
	}
	return string(id)
}
