package service

// Service defines the lifecycle interface for infrastructure subsystems
// Services manage long-lived resources: the physics space, the audio device
//
// Lifecycle:
//  1. Construction
//  2. Init(args...) - configuration, args[0] is the decoded parameter.Tuning
//  3. Start() - acquire devices, launch background goroutines
//  4. [runtime operation]
//  5. Stop() - release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must Init before this one
	Dependencies() []string

	// Init configures the service from optional args
	Init(args ...any) error

	// Start begins service operation
	// Called after all services have initialized
	Start() error

	// Stop halts service operation and releases resources
	// Must be idempotent - safe to call multiple times
	Stop() error
}

// ResourcePublisher is a callback for services to contribute ECS resources
// Services call this with wrapped resources; receiver handles type routing
type ResourcePublisher func(resource any)

// ResourceContributor is implemented by services that expose APIs to the ECS layer
// Optional interface - services not implementing it are skipped during contribution
type ResourceContributor interface {
	Contribute(publish ResourcePublisher)
}
