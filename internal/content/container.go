package content

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer() *Container {
	service := MustDefault()
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
