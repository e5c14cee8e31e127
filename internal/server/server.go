package server

// Server объединяет HTTP сервера, отвечающие за обработку конкретных сущностей
type Server struct {
	LeadServer
}

func NewServer(
	leadServer LeadServer,
) Server {
	return Server{
		LeadServer: leadServer,
	}
}
