// Package main provides the walletgen CLI tool for deriving a Bitcoin address
// from a new seed phrase, one persisted stage at a time.
package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/complex-gh/walletgen"
	"github.com/complex-gh/walletgen/internal/config"
	"github.com/complex-gh/walletgen/internal/log"
	"github.com/complex-gh/walletgen/internal/store"
	mcobra "github.com/muesli/mango-cobra"
	"github.com/muesli/roff"
	"github.com/skip2/go-qrcode"
	"github.com/spf13/cobra"
)

var (
	vip = config.New()
	cfg config.Config

	fromPath      string
	outPath       string
	sshKeyPath    string
	keyPassphrase string
	askPassphrase bool
	showQR        bool

	rootCmd = &cobra.Command{
		Use:   "walletgen",
		Short: "Derive a Bitcoin address from a new seed phrase, one stage at a time",
		Long: `Derive a Bitcoin address from a new seed phrase, one stage at a time.

Each command reads the previous stage's file and saves its own:

    generate-seed      -> wallet.seed     (24-word mnemonic)
    generate-private   -> wallet.private  (hex private key)
    generate-public    -> wallet.public   (hex compressed public key)
    generate-address   -> wallet.address  (Base58Check P2PKH address)

The private key is the first 32 bytes of the BIP39 seed. No BIP32/BIP44
derivation path is applied, so the address will NOT match the one an HD
wallet shows for the same seed phrase.

SECURITY TIP: run this on an offline machine and remove the wallet.* files
you do not need to keep.`,
		Example: `  walletgen generate-seed
  walletgen generate-private --passphrase
  walletgen generate-public
  walletgen generate-address --qr
  walletgen generate-seed --ssh-key ~/.ssh/id_ed25519
  walletgen generate-private --from backup.seed --dir /mnt/usb`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			cfg = config.Load(vip)
			log.Init(os.Stderr, cfg.LogLevel, cfg.LogJSON)
			if err := walletgen.SetLanguage(cfg.Language); err != nil {
				return err
			}
			log.CLI.Debug().Str("dir", cfg.Dir).Str("language", cfg.Language).Msg("config loaded")
			return nil
		},
	}

	generateSeedCmd = &cobra.Command{
		Use:   "generate-seed",
		Short: "Generate a new 24-word seed phrase",
		Long: `Generate a new 24-word seed phrase from 256 bits of secure randomness.

With --ssh-key the 32-byte seed of an ed25519 SSH key is used as the
entropy instead, so the same key always gives the same phrase.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(*cobra.Command, []string) error {
			if keyPassphrase != "" && sshKeyPath == "" {
				return errors.New("--seed-passphrase requires --ssh-key")
			}

			src := walletgen.DefaultEntropy
			if sshKeyPath != "" {
				key, err := loadSSHKey(sshKeyPath)
				if err != nil {
					return err
				}
				src = walletgen.SSHKeyEntropy(key, keyPassphrase)
			}

			phrase, err := walletgen.NewSeedPhrase(src)
			if err != nil {
				return fmt.Errorf("could not generate seed phrase: %w", err)
			}
			return save(walletgen.StageSeed, "Seed Phrase", phrase)
		},
	}

	generatePrivateCmd = &cobra.Command{
		Use:          "generate-private",
		Short:        "Derive the private key from a seed phrase file",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(*cobra.Command, []string) error {
			var passphrase string
			if askPassphrase {
				p, err := askSeedPassphrase()
				if err != nil {
					return err
				}
				passphrase = p
			}
			return runStage(walletgen.StagePrivate, "Private Key", func(phrase string) (string, error) {
				defer log.Benchmark("derive private key")()
				return walletgen.PrivateKeyHexFromPhrase(phrase, passphrase)
			})
		},
	}

	generatePublicCmd = &cobra.Command{
		Use:          "generate-public",
		Short:        "Derive the compressed public key from a private key file",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(*cobra.Command, []string) error {
			return runStage(walletgen.StagePublic, "Public Key", walletgen.PublicKeyHexFromPrivateHex)
		},
	}

	generateAddressCmd = &cobra.Command{
		Use:          "generate-address",
		Short:        "Derive the Bitcoin address from a public key file",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(*cobra.Command, []string) error {
			return runStage(walletgen.StageAddress, "Bitcoin Address", func(publicHex string) (string, error) {
				addr, err := walletgen.AddressFromPublicHex(publicHex)
				if err != nil {
					return "", err
				}
				if showQR {
					q, err := qrcode.New(addr, qrcode.Medium)
					if err != nil {
						return "", fmt.Errorf("could not render QR code: %w", err)
					}
					fmt.Println(q.ToSmallString(false))
				}
				return addr, nil
			})
		},
	}

	checkAddressCmd = &cobra.Command{
		Use:          "check-address <address>",
		Short:        "Verify the Base58Check checksum of an address",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			payload, err := walletgen.DecodeAddress(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Version: 0x%02x\n", payload[0])
			fmt.Printf("Hash160: %s\n", hex.EncodeToString(payload[1:]))
			return nil
		},
	}

	manCmd = &cobra.Command{
		Use:          "man",
		Args:         cobra.NoArgs,
		Short:        "generate man pages",
		Hidden:       true,
		SilenceUsage: true,
		RunE: func(*cobra.Command, []string) error {
			manPage, err := mcobra.NewManPage(1, rootCmd)
			if err != nil {
				//nolint: wrapcheck
				return err
			}
			manPage = manPage.WithSection("Copyright", "(C) 2025-2026 complex.\n"+
				"Released under MIT license.")
			fmt.Println(manPage.Build(roff.NewDocument()))
			return nil
		},
	}

	// completionCmd generates shell completion scripts for bash, zsh, fish, and powershell.
	completionCmd = &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `Generate shell completion script for walletgen.

To load completions:

Bash:
  $ source <(walletgen completion bash)

Zsh:
  $ walletgen completion zsh > "${fpath[1]}/_walletgen"

Fish:
  $ walletgen completion fish | source

PowerShell:
  PS> walletgen completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		SilenceUsage:          true,
		RunE: func(_ *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return rootCmd.GenBashCompletion(os.Stdout)
			case "zsh":
				return rootCmd.GenZshCompletion(os.Stdout)
			case "fish":
				return rootCmd.GenFishCompletion(os.Stdout, true)
			case "powershell":
				return rootCmd.GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return fmt.Errorf("unknown shell: %s", args[0])
			}
		},
	}
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("dir", ".", "Directory for the default wallet.* files")
	pf.StringP("language", "l", "en", "Mnemonic word list language")
	pf.BoolP("yes", "y", false, "Overwrite existing files without asking")
	pf.String("log-level", "info", "Log level: debug, info, warn, error or off")
	pf.Bool("log-json", false, "Write logs as JSON")
	if err := config.BindFlags(vip, pf, map[string]string{
		config.DirKey:       "dir",
		config.LanguageKey:  "language",
		config.AssumeYesKey: "yes",
		config.LogLevelKey:  "log-level",
		config.LogJSONKey:   "log-json",
	}); err != nil {
		panic(err)
	}

	for _, cmd := range []*cobra.Command{generatePrivateCmd, generatePublicCmd, generateAddressCmd} {
		in, _ := stageOf(cmd).Input()
		cmd.Flags().StringVar(&fromPath, "from", "", fmt.Sprintf("Read from this file instead of the default (%s)", in.DefaultFile()))
	}
	for _, cmd := range []*cobra.Command{generateSeedCmd, generatePrivateCmd, generatePublicCmd, generateAddressCmd} {
		cmd.Flags().StringVarP(&outPath, "out", "o", "", fmt.Sprintf("Save to this file instead of the default (%s)", stageOf(cmd).DefaultFile()))
	}
	generateSeedCmd.Flags().StringVar(&outPath, "from", "", "Same as --out")
	_ = generateSeedCmd.Flags().MarkHidden("from")
	generateSeedCmd.Flags().StringVar(&sshKeyPath, "ssh-key", "", "Use the seed of an ed25519 SSH key as entropy")
	generateSeedCmd.Flags().StringVar(&keyPassphrase, "seed-passphrase", "", "Passphrase to combine with the SSH key seed (requires --ssh-key)")
	generatePrivateCmd.Flags().BoolVarP(&askPassphrase, "passphrase", "p", false, "Prompt for a BIP39 passphrase")
	generateAddressCmd.Flags().BoolVar(&showQR, "qr", false, "Also print the address as a QR code")

	rootCmd.AddCommand(generateSeedCmd, generatePrivateCmd, generatePublicCmd, generateAddressCmd)
	rootCmd.AddCommand(checkAddressCmd, manCmd, completionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		renderError(err)
		os.Exit(1)
	}
}

func stageOf(cmd *cobra.Command) walletgen.Stage {
	switch cmd {
	case generatePrivateCmd:
		return walletgen.StagePrivate
	case generatePublicCmd:
		return walletgen.StagePublic
	case generateAddressCmd:
		return walletgen.StageAddress
	default:
		return walletgen.StageSeed
	}
}

func artifacts() *store.Store {
	return store.New(store.ConfirmFunc(confirmOverwrite), cfg.AssumeYes)
}

// runStage reads the artifact of the stage before stage, transforms it with
// derive and saves the result.
func runStage(stage walletgen.Stage, label string, derive func(string) (string, error)) error {
	in, _ := stage.Input()
	from := fromPath
	if from == "" {
		from = cfg.Path(in.DefaultFile())
	}

	input, err := artifacts().Read(from)
	if err != nil {
		return err
	}
	log.CLI.Debug().Str("stage", stage.String()).Str("from", from).Msg("deriving")

	out, err := derive(input)
	if err != nil {
		return fmt.Errorf("could not derive %s from %s: %w", stage, from, err)
	}
	return save(stage, label, out)
}

// save prints the artifact and writes it to --out or the stage's default
// file. A declined overwrite is not an error.
func save(stage walletgen.Stage, label, content string) error {
	fmt.Printf("%s: %s\n", label, content)

	to := outPath
	if to == "" {
		to = cfg.Path(stage.DefaultFile())
	}
	written, err := artifacts().Write(to, content)
	if err != nil {
		return err
	}
	if !written {
		fmt.Println("Aborted.")
		return nil
	}
	fmt.Printf("Saved to: %s\n", to)
	return nil
}
