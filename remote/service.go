package remote

// Service wraps Controller as a service.Service
type Service struct {
	ctrl *Controller
	deps []string
}

// NewService wraps ctrl; deps name services that must Init first
func NewService(ctrl *Controller, deps ...string) *Service {
	return &Service{ctrl: ctrl, deps: deps}
}

// Name implements service.Service
func (s *Service) Name() string {
	return "remote"
}

// Dependencies implements service.Service
func (s *Service) Dependencies() []string {
	return s.deps
}

// Init implements service.Service
// A missing remote is not an error; the controller stays disabled
func (s *Service) Init() error {
	s.ctrl.Initialize()
	return nil
}

// Start implements service.Service
func (s *Service) Start() error {
	return nil
}

// Stop implements service.Service
func (s *Service) Stop() error {
	s.ctrl.Shutdown()
	return nil
}

// Controller returns the wrapped controller
func (s *Service) Controller() *Controller {
	return s.ctrl
}
