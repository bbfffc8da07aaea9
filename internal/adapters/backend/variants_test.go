package backend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pacdef/internal/adapters/backend"
	"go.trai.ch/pacdef/internal/core/domain"
	"go.trai.ch/pacdef/internal/core/ports"
	"go.trai.ch/pacdef/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestQueries(t *testing.T) {
	tests := []struct {
		name     string
		build    func(*domain.Config, ports.CommandRunner) ports.Backend
		explicit bool
		cmd      domain.Command
		output   string
		want     domain.PackageSet
	}{
		{
			name:   "arch installed",
			build:  func(c *domain.Config, r ports.CommandRunner) ports.Backend { return backend.NewArch(c, r) },
			cmd:    domain.NewCommand("pacman", "-Qq"),
			output: "vim\nbase\ngit\n",
			want:   domain.PackageSet{"base", "git", "vim"},
		},
		{
			name:     "arch explicit",
			build:    func(c *domain.Config, r ports.CommandRunner) ports.Backend { return backend.NewArch(c, r) },
			explicit: true,
			cmd:      domain.NewCommand("pacman", "-Qqe"),
			output:   "vim\n",
			want:     domain.PackageSet{"vim"},
		},
		{
			name:   "debian installed skips removed packages",
			build:  func(_ *domain.Config, r ports.CommandRunner) ports.Backend { return backend.NewDebian(r) },
			cmd:    domain.NewCommand("dpkg-query", "-W", `-f=${db:Status-Status} ${Package}\n`),
			output: "installed vim\nconfig-files oldpkg\ninstalled curl\n",
			want:   domain.PackageSet{"curl", "vim"},
		},
		{
			name:     "debian explicit",
			build:    func(_ *domain.Config, r ports.CommandRunner) ports.Backend { return backend.NewDebian(r) },
			explicit: true,
			cmd:      domain.NewCommand("apt-mark", "showmanual"),
			output:   "curl\n\nvim\n",
			want:     domain.PackageSet{"curl", "vim"},
		},
		{
			name:   "flatpak system installation",
			build:  func(c *domain.Config, r ports.CommandRunner) ports.Backend { return backend.NewFlatpak(c, r) },
			cmd:    domain.NewCommand("flatpak", "list", "--app", "--columns=application", "--system"),
			output: "org.mozilla.firefox\ncom.spotify.Client\n",
			want:   domain.PackageSet{"com.spotify.Client", "org.mozilla.firefox"},
		},
		{
			name: "flatpak user installation",
			build: func(c *domain.Config, r ports.CommandRunner) ports.Backend {
				c.FlatpakSystemwide = false
				return backend.NewFlatpak(c, r)
			},
			explicit: true,
			cmd:      domain.NewCommand("flatpak", "list", "--app", "--columns=application", "--user"),
			output:   "org.gimp.GIMP\n",
			want:     domain.PackageSet{"org.gimp.GIMP"},
		},
		{
			name:   "python installed",
			build:  func(c *domain.Config, r ports.CommandRunner) ports.Backend { return backend.NewPython(c, r) },
			cmd:    domain.NewCommand("pip", "list", "--format=json"),
			output: `[{"name": "requests", "version": "2.31.0"}, {"name": "black", "version": "24.1.0"}]`,
			want:   domain.PackageSet{"black", "requests"},
		},
		{
			name: "python explicit with custom binary",
			build: func(c *domain.Config, r ports.CommandRunner) ports.Backend {
				c.PipBinary = "pip3"
				return backend.NewPython(c, r)
			},
			explicit: true,
			cmd:      domain.NewCommand("pip3", "list", "--not-required", "--format=json"),
			output:   `[{"name": "black", "version": "24.1.0"}]`,
			want:     domain.PackageSet{"black"},
		},
		{
			name:   "rust installed",
			build:  func(_ *domain.Config, r ports.CommandRunner) ports.Backend { return backend.NewRust(r) },
			cmd:    domain.NewCommand("cargo", "install", "--list"),
			output: "ripgrep v14.1.0:\n    rg\nfd-find v9.0.0:\n    fd\n",
			want:   domain.PackageSet{"fd-find", "ripgrep"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			runner := mocks.NewMockCommandRunner(ctrl)
			runner.EXPECT().Output(gomock.Any(), tt.cmd).Return([]byte(tt.output), nil)

			b := tt.build(defaultConfig(), runner)

			var got domain.PackageSet
			var err error
			if tt.explicit {
				got, err = b.ExplicitPackages(t.Context())
			} else {
				got, err = b.InstalledPackages(t.Context())
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPython_InvalidOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	runner.EXPECT().Output(gomock.Any(), gomock.Any()).Return([]byte("not json"), nil)

	_, err := backend.NewPython(defaultConfig(), runner).InstalledPackages(t.Context())
	assert.ErrorIs(t, err, domain.ErrQueryFailed)
}

func TestActions(t *testing.T) {
	pkgs := domain.PackageSet{"a", "b"}

	tests := []struct {
		name   string
		build  func(*domain.Config, ports.CommandRunner) ports.Backend
		remove bool
		opts   domain.ActionOptions
		want   domain.Command
	}{
		{
			name:  "arch install",
			build: func(c *domain.Config, r ports.CommandRunner) ports.Backend { return backend.NewArch(c, r) },
			want:  domain.NewCommand("paru", "-S", "--needed", "a", "b"),
		},
		{
			name: "arch install noconfirm with custom helper",
			build: func(c *domain.Config, r ports.CommandRunner) ports.Backend {
				c.AURHelper = "yay"
				return backend.NewArch(c, r)
			},
			opts: domain.ActionOptions{NoConfirm: true},
			want: domain.NewCommand("yay", "-S", "--needed", "--noconfirm", "a", "b"),
		},
		{
			name: "arch remove with extra args",
			build: func(c *domain.Config, r ports.CommandRunner) ports.Backend {
				c.AURRemoveArgs = []string{"--cascade"}
				return backend.NewArch(c, r)
			},
			remove: true,
			opts:   domain.ActionOptions{NoConfirm: true},
			want:   domain.NewCommand("paru", "-Rsn", "--cascade", "--noconfirm", "a", "b"),
		},
		{
			name:  "debian install",
			build: func(_ *domain.Config, r ports.CommandRunner) ports.Backend { return backend.NewDebian(r) },
			opts:  domain.ActionOptions{NoConfirm: true},
			want:  domain.NewCommand("sudo", "apt-get", "install", "-y", "a", "b"),
		},
		{
			name:   "debian remove",
			build:  func(_ *domain.Config, r ports.CommandRunner) ports.Backend { return backend.NewDebian(r) },
			remove: true,
			want:   domain.NewCommand("sudo", "apt-get", "remove", "--auto-remove", "a", "b"),
		},
		{
			name:  "flatpak install",
			build: func(c *domain.Config, r ports.CommandRunner) ports.Backend { return backend.NewFlatpak(c, r) },
			opts:  domain.ActionOptions{NoConfirm: true},
			want:  domain.NewCommand("flatpak", "install", "--system", "-y", "a", "b"),
		},
		{
			name:   "flatpak remove",
			build:  func(c *domain.Config, r ports.CommandRunner) ports.Backend { return backend.NewFlatpak(c, r) },
			remove: true,
			want:   domain.NewCommand("flatpak", "uninstall", "--system", "a", "b"),
		},
		{
			name:  "python install",
			build: func(c *domain.Config, r ports.CommandRunner) ports.Backend { return backend.NewPython(c, r) },
			opts:  domain.ActionOptions{NoConfirm: true},
			want:  domain.NewCommand("pip", "install", "--user", "a", "b"),
		},
		{
			name:   "python remove",
			build:  func(c *domain.Config, r ports.CommandRunner) ports.Backend { return backend.NewPython(c, r) },
			remove: true,
			opts:   domain.ActionOptions{NoConfirm: true},
			want:   domain.NewCommand("pip", "uninstall", "-y", "a", "b"),
		},
		{
			name:  "rust install",
			build: func(_ *domain.Config, r ports.CommandRunner) ports.Backend { return backend.NewRust(r) },
			want:  domain.NewCommand("cargo", "install", "a", "b"),
		},
		{
			name:   "rust remove",
			build:  func(_ *domain.Config, r ports.CommandRunner) ports.Backend { return backend.NewRust(r) },
			remove: true,
			want:   domain.NewCommand("cargo", "uninstall", "a", "b"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			runner := mocks.NewMockCommandRunner(ctrl)
			runner.EXPECT().Run(gomock.Any(), tt.want).Return(nil)

			b := tt.build(defaultConfig(), runner)

			var err error
			if tt.remove {
				err = b.Remove(t.Context(), pkgs, tt.opts)
			} else {
				err = b.Install(t.Context(), pkgs, tt.opts)
			}
			require.NoError(t, err)
		})
	}
}

func TestActions_EmptySetIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)

	for _, b := range backend.NewRegistry(runner).Backends(defaultConfig()) {
		require.NoError(t, b.Install(t.Context(), domain.NewPackageSet(), domain.ActionOptions{}))
		require.NoError(t, b.Remove(t.Context(), domain.NewPackageSet(), domain.ActionOptions{}))
	}
}
