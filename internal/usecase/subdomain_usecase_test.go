package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"nimbushost/internal/domain/entities"
	"nimbushost/internal/usecase/interfaces"
	mock_interfaces "nimbushost/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type subdomainMocks struct {
	subdomainRepo *mock_interfaces.MockISubdomainRepository
	serviceRepo   *mock_interfaces.MockIServiceRepository
	settingsRepo  *mock_interfaces.MockISettingsRepository
	userRepo      *mock_interfaces.MockIUserRepository
	provisioner   *mock_interfaces.MockIProvisionerClient
	credStore     *mock_interfaces.MockICredentialStore
	mailer        *mock_interfaces.MockIMailer
}

func newSubdomainUseCaseForTest(ctrl *gomock.Controller) (*SubdomainUseCase, subdomainMocks) {
	m := subdomainMocks{
		subdomainRepo: mock_interfaces.NewMockISubdomainRepository(ctrl),
		serviceRepo:   mock_interfaces.NewMockIServiceRepository(ctrl),
		settingsRepo:  mock_interfaces.NewMockISettingsRepository(ctrl),
		userRepo:      mock_interfaces.NewMockIUserRepository(ctrl),
		provisioner:   mock_interfaces.NewMockIProvisionerClient(ctrl),
		credStore:     mock_interfaces.NewMockICredentialStore(ctrl),
		mailer:        mock_interfaces.NewMockIMailer(ctrl),
	}
	uc := NewSubdomainUseCase(m.subdomainRepo, m.serviceRepo, m.settingsRepo, m.userRepo,
		m.provisioner, m.credStore, m.mailer, zap.NewNop())
	return uc, m
}

func provisionedSettings() entities.PlatformSettings {
	s := testSettings
	s.Provisioning = entities.ProvisioningSettings{
		BaseURL:         "https://sites.internal.example",
		APIKey:          "pk_test",
		TargetDirectory: "/var/www",
	}
	return s
}

func TestSubdomainUseCase_Provision_LabelValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, _ := newSubdomainUseCaseForTest(ctrl)

	// No expectations on any collaborator: a bad label must be rejected
	// before the settings read, let alone the external call.
	cases := []struct {
		name  string
		label string
	}{
		{"empty", ""},
		{"too short", "ab"},
		{"too long", "a123456789012345678901234567890"},
		{"uppercase", "MySite"},
		{"leading hyphen", "-abc"},
		{"trailing hyphen", "abc-"},
		{"inner space", "my site"},
		{"dot", "my.site"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Provision(context.Background(), "u1", tc.label, "")
			if !errors.Is(err, ErrInvalidLabel) {
				t.Fatalf("label %q: expected ErrInvalidLabel, got %v", tc.label, err)
			}
		})
	}

	t.Run("missing user id", func(t *testing.T) {
		_, err := uc.Provision(context.Background(), " ", "mysite", "")
		if !errors.Is(err, ErrInvalidRequest) {
			t.Fatalf("expected ErrInvalidRequest, got %v", err)
		}
	})
}

func TestSubdomainUseCase_Provision_Preconditions(t *testing.T) {
	t.Run("root domain not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSubdomainUseCaseForTest(ctrl)

		m.settingsRepo.EXPECT().Get(gomock.Any()).Return(entities.PlatformSettings{ID: "platform"}, nil)

		_, err := uc.Provision(context.Background(), "u1", "mysite", "")
		if !errors.Is(err, ErrNotConfigured) {
			t.Fatalf("expected ErrNotConfigured, got %v", err)
		}
	})

	t.Run("fqdn already taken", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSubdomainUseCaseForTest(ctrl)

		m.settingsRepo.EXPECT().Get(gomock.Any()).Return(provisionedSettings(), nil)
		m.subdomainRepo.EXPECT().GetByFQDN(gomock.Any(), "mysite.example.com").
			Return(entities.Subdomain{ID: "sd1", FQDN: "mysite.example.com"}, nil)

		// No provisioner expectation: the external API must not be called
		// for a name that is already reserved.
		_, err := uc.Provision(context.Background(), "u1", "mysite", "")
		if !errors.Is(err, ErrAlreadyTaken) {
			t.Fatalf("expected ErrAlreadyTaken, got %v", err)
		}
	})

	t.Run("provisioning api not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSubdomainUseCaseForTest(ctrl)

		m.settingsRepo.EXPECT().Get(gomock.Any()).Return(testSettings, nil)
		m.subdomainRepo.EXPECT().GetByFQDN(gomock.Any(), "mysite.example.com").
			Return(entities.Subdomain{}, nil)

		_, err := uc.Provision(context.Background(), "u1", "mysite", "")
		if !errors.Is(err, ErrNotConfigured) {
			t.Fatalf("expected ErrNotConfigured, got %v", err)
		}
	})

	t.Run("foreign service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSubdomainUseCaseForTest(ctrl)

		m.settingsRepo.EXPECT().Get(gomock.Any()).Return(provisionedSettings(), nil)
		m.subdomainRepo.EXPECT().GetByFQDN(gomock.Any(), "mysite.example.com").
			Return(entities.Subdomain{}, nil)
		m.serviceRepo.EXPECT().GetByID(gomock.Any(), "s1").
			Return(entities.Service{ID: "s1", OwnerUserID: "someone-else"}, nil)

		_, err := uc.Provision(context.Background(), "u1", "mysite", "s1")
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("service already bound to a subdomain", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSubdomainUseCaseForTest(ctrl)

		m.settingsRepo.EXPECT().Get(gomock.Any()).Return(provisionedSettings(), nil)
		m.subdomainRepo.EXPECT().GetByFQDN(gomock.Any(), "mysite.example.com").
			Return(entities.Subdomain{}, nil)
		m.serviceRepo.EXPECT().GetByID(gomock.Any(), "s1").
			Return(entities.Service{ID: "s1", OwnerUserID: "u1"}, nil)
		m.subdomainRepo.EXPECT().GetByServiceID(gomock.Any(), "s1").
			Return(entities.Subdomain{ID: "sd0", FQDN: "old.example.com"}, nil)

		_, err := uc.Provision(context.Background(), "u1", "mysite", "s1")
		if !errors.Is(err, ErrAlreadyTaken) {
			t.Fatalf("expected ErrAlreadyTaken, got %v", err)
		}
	})
}

func TestSubdomainUseCase_Provision_ExternalFailures(t *testing.T) {
	expectFriendlyPath := func(m subdomainMocks) {
		m.settingsRepo.EXPECT().Get(gomock.Any()).Return(provisionedSettings(), nil)
		m.subdomainRepo.EXPECT().GetByFQDN(gomock.Any(), "mysite.example.com").
			Return(entities.Subdomain{}, nil)
	}

	t.Run("provisioner failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSubdomainUseCaseForTest(ctrl)

		expectFriendlyPath(m)
		m.provisioner.EXPECT().CreateSite(gomock.Any(), gomock.Any(), "mysite", "example.com").
			Return(errors.New("api returned 500"))

		// No Create expectation: a failed external call must leave no record.
		_, err := uc.Provision(context.Background(), "u1", "mysite", "")
		if !errors.Is(err, ErrProvisioningFailed) {
			t.Fatalf("expected ErrProvisioningFailed, got %v", err)
		}
	})

	t.Run("provisioner breaker open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSubdomainUseCaseForTest(ctrl)

		expectFriendlyPath(m)
		m.provisioner.EXPECT().CreateSite(gomock.Any(), gomock.Any(), "mysite", "example.com").
			Return(fmt.Errorf("%w: breaker open", interfaces.ErrProvisionerUnavailable))

		_, err := uc.Provision(context.Background(), "u1", "mysite", "")
		if !errors.Is(err, ErrDependencyTimeout) {
			t.Fatalf("expected ErrDependencyTimeout, got %v", err)
		}
	})

	t.Run("provisioner deadline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSubdomainUseCaseForTest(ctrl)

		expectFriendlyPath(m)
		m.provisioner.EXPECT().CreateSite(gomock.Any(), gomock.Any(), "mysite", "example.com").
			Return(fmt.Errorf("create site: %w", context.DeadlineExceeded))

		_, err := uc.Provision(context.Background(), "u1", "mysite", "")
		if !errors.Is(err, ErrDependencyTimeout) {
			t.Fatalf("expected ErrDependencyTimeout, got %v", err)
		}
	})

	t.Run("lost the create race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newSubdomainUseCaseForTest(ctrl)

		expectFriendlyPath(m)
		m.provisioner.EXPECT().CreateSite(gomock.Any(), gomock.Any(), "mysite", "example.com").Return(nil)
		m.subdomainRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(entities.Subdomain{}, fmt.Errorf("%w: mysite.example.com", interfaces.ErrSubdomainExists))

		_, err := uc.Provision(context.Background(), "u1", "mysite", "")
		if !errors.Is(err, ErrAlreadyTaken) {
			t.Fatalf("expected ErrAlreadyTaken, got %v", err)
		}
	})
}

func TestSubdomainUseCase_Provision_Standalone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newSubdomainUseCaseForTest(ctrl)

	m.settingsRepo.EXPECT().Get(gomock.Any()).Return(provisionedSettings(), nil)
	m.subdomainRepo.EXPECT().GetByFQDN(gomock.Any(), "mysite.example.com").
		Return(entities.Subdomain{}, nil)
	m.provisioner.EXPECT().CreateSite(gomock.Any(), gomock.Any(), "mysite", "example.com").
		DoAndReturn(func(_ context.Context, cfg entities.ProvisioningSettings, _, _ string) error {
			if cfg.BaseURL != "https://sites.internal.example" {
				t.Fatalf("expected settings credentials passed through, got %q", cfg.BaseURL)
			}
			return nil
		})
	m.subdomainRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, sd entities.Subdomain) (entities.Subdomain, error) {
			if sd.ID == "" {
				t.Fatal("expected a generated subdomain id")
			}
			if sd.FQDN != "mysite.example.com" || sd.Label != "mysite" {
				t.Fatalf("unexpected record: %+v", sd)
			}
			if sd.OwnerUserID != "u1" || sd.ServiceID != "" {
				t.Fatalf("unexpected ownership: %+v", sd)
			}
			if sd.CreatedAt.IsZero() {
				t.Fatal("expected created_at to be set")
			}
			return sd, nil
		},
	)

	sd, err := uc.Provision(context.Background(), "u1", "mysite", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sd.FQDN != "mysite.example.com" {
		t.Fatalf("expected fqdn mysite.example.com, got %s", sd.FQDN)
	}
}

func TestSubdomainUseCase_Provision_BoundToService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newSubdomainUseCaseForTest(ctrl)

	svc := entities.Service{ID: "s1", OwnerUserID: "u1", Status: entities.ServiceStatusPending}

	m.settingsRepo.EXPECT().Get(gomock.Any()).Return(provisionedSettings(), nil)
	m.subdomainRepo.EXPECT().GetByFQDN(gomock.Any(), "mysite.example.com").
		Return(entities.Subdomain{}, nil)
	m.serviceRepo.EXPECT().GetByID(gomock.Any(), "s1").Return(svc, nil)
	m.subdomainRepo.EXPECT().GetByServiceID(gomock.Any(), "s1").Return(entities.Subdomain{}, nil)
	m.provisioner.EXPECT().CreateSite(gomock.Any(), gomock.Any(), "mysite", "example.com").Return(nil)
	m.subdomainRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, sd entities.Subdomain) (entities.Subdomain, error) {
			if sd.ServiceID != "s1" {
				t.Fatalf("expected record bound to s1, got %q", sd.ServiceID)
			}
			return sd, nil
		},
	)
	m.serviceRepo.EXPECT().UpdateProvisioned(gomock.Any(), "s1", "mysite.example.com", "mysite").
		Return(entities.Service{ID: "s1", Status: entities.ServiceStatusActive}, nil)
	m.credStore.EXPECT().Put(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cred entities.PanelCredential) error {
			if cred.Username != "mysite" {
				t.Fatalf("expected panel username mysite, got %q", cred.Username)
			}
			if cred.Password == "" || cred.Token == "" {
				t.Fatal("expected generated panel secrets")
			}
			return nil
		},
	)
	m.userRepo.EXPECT().GetByID(gomock.Any(), "u1").Return(testUser, nil)
	m.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, mail entities.Mail) error {
			if mail.Type != entities.MailTypeProvisioned || mail.To != testUser.Email {
				t.Fatalf("unexpected mail: %+v", mail)
			}
			if mail.Payload["subdomain"] != "mysite.example.com" {
				t.Fatalf("unexpected mail payload: %v", mail.Payload)
			}
			return nil
		},
	)

	sd, err := uc.Provision(context.Background(), "u1", "mysite", "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sd.ServiceID != "s1" {
		t.Fatalf("expected subdomain bound to s1, got %q", sd.ServiceID)
	}
}

func TestSubdomainUseCase_Provision_SideChannelFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newSubdomainUseCaseForTest(ctrl)

	svc := entities.Service{ID: "s1", OwnerUserID: "u1", Status: entities.ServiceStatusPending}

	m.settingsRepo.EXPECT().Get(gomock.Any()).Return(provisionedSettings(), nil)
	m.subdomainRepo.EXPECT().GetByFQDN(gomock.Any(), "mysite.example.com").
		Return(entities.Subdomain{}, nil)
	m.serviceRepo.EXPECT().GetByID(gomock.Any(), "s1").Return(svc, nil)
	m.subdomainRepo.EXPECT().GetByServiceID(gomock.Any(), "s1").Return(entities.Subdomain{}, nil)
	m.provisioner.EXPECT().CreateSite(gomock.Any(), gomock.Any(), "mysite", "example.com").Return(nil)
	m.subdomainRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, sd entities.Subdomain) (entities.Subdomain, error) { return sd, nil },
	)
	m.serviceRepo.EXPECT().UpdateProvisioned(gomock.Any(), "s1", "mysite.example.com", "mysite").
		Return(entities.Service{ID: "s1", Status: entities.ServiceStatusActive}, nil)
	m.credStore.EXPECT().Put(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
	m.userRepo.EXPECT().GetByID(gomock.Any(), "u1").Return(testUser, nil)
	m.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("relay down"))

	if _, err := uc.Provision(context.Background(), "u1", "mysite", "s1"); err != nil {
		t.Fatalf("expected side-channel failures to degrade to warnings, got %v", err)
	}
}

func TestSubdomainUseCase_ListSubdomains(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newSubdomainUseCaseForTest(ctrl)

	t.Run("missing user id", func(t *testing.T) {
		if _, err := uc.ListSubdomains(context.Background(), ""); !errors.Is(err, ErrInvalidRequest) {
			t.Fatalf("expected ErrInvalidRequest, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		m.subdomainRepo.EXPECT().ListByOwnerID(gomock.Any(), "u1").
			Return([]entities.Subdomain{{ID: "sd1", FQDN: "mysite.example.com"}}, nil)

		out, err := uc.ListSubdomains(context.Background(), "u1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 1 || out[0].FQDN != "mysite.example.com" {
			t.Fatalf("unexpected result: %+v", out)
		}
	})
}
