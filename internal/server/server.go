package server

// Server groups the handlers of every resource the HTTP API serves.
type Server struct {
	PredictionServer
}

func NewServer(
	predictionServer PredictionServer,
) Server {
	return Server{
		PredictionServer: predictionServer,
	}
}
