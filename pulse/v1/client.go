package v1

type PulseClient struct {
	Transport  *Transport
	Attendance *AttendanceEndpoint
}

// NewPulseClient initializes the API client
func NewPulseClient(baseURL string, token string) *PulseClient {
	t := NewTransport(baseURL, token)
	return &PulseClient{
		Transport:  t,
		Attendance: &AttendanceEndpoint{transport: t},
	}
}
