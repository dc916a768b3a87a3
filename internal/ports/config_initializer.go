package ports

// ConfigInitializer writes a default promptloop.yaml.
type ConfigInitializer interface {
	Init(root string, force bool) (path string, err error)
}
