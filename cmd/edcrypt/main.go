// Command edcrypt is a CLI front end over the edcrypt package: compute
// digests, generate passphrase-derived keypairs, and run the symmetric,
// public-key, and signature operations against files.
package main

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/dustin-ray/edcrypt"
	"github.com/dustin-ray/edcrypt/internal/curve"
)

var (
	errColor = color.New(color.FgRed, color.Bold)
	okColor  = color.New(color.FgGreen, color.Bold)
)

func main() {
	app := &cli.App{
		Name:  "edcrypt",
		Usage: "SHA3/Edwards-curve cryptographic toolkit",
		Commands: []*cli.Command{
			hashCommand,
			keygenCommand,
			signCommand,
			verifyCommand,
			encryptCommand,
			decryptCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		errColor.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var strengthFlag = &cli.IntFlag{
	Name:  "strength",
	Value: 512,
	Usage: "security strength d: 224/256/384/512 for hash, 256/512 for the other commands",
}

var curveFlag = &cli.StringFlag{
	Name:  "curve",
	Value: "E521",
	Usage: "curve name, one of E521/E448",
}

func parseCurve(name string) (curve.ID, error) {
	switch name {
	case "E521":
		return curve.E521, nil
	case "E448":
		return curve.E448, nil
	default:
		return 0, fmt.Errorf("unknown curve %q (want E521 or E448)", name)
	}
}

var hashCommand = &cli.Command{
	Name:      "hash",
	Usage:     "compute hash(data, d) for a file",
	ArgsUsage: "FILE",
	Flags:     []cli.Flag{strengthFlag},
	Action: func(c *cli.Context) error {
		path := c.Args().First()
		if path == "" {
			return cli.Exit("hash requires a FILE argument", 1)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		digest, err := edcrypt.Hash(data, c.Int("strength"))
		if err != nil {
			return err
		}
		fmt.Println(hex.EncodeToString(digest))
		return nil
	},
}

var keygenCommand = &cli.Command{
	Name:  "keygen",
	Usage: "derive a keypair from a passphrase and write a keyfile",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "owner", Required: true},
		&cli.StringFlag{Name: "out", Required: true, Usage: "keyfile path to write"},
		curveFlag,
		strengthFlag,
	},
	Action: func(c *cli.Context) error {
		pw, err := promptPassword("passphrase: ")
		if err != nil {
			return err
		}
		id, err := parseCurve(c.String("curve"))
		if err != nil {
			return err
		}
		kp, err := edcrypt.KeyPairNew(pw, c.String("owner"), id, c.Int("strength"))
		if err != nil {
			return err
		}
		if err := writeKeyFile(c.String("out"), kp, c.Int("strength")); err != nil {
			return err
		}
		okColor.Printf("wrote keyfile for %q to %s\n", kp.Owner, c.String("out"))
		return nil
	},
}

var signCommand = &cli.Command{
	Name:      "sign",
	Usage:     "sign a file's contents under a passphrase-derived key",
	ArgsUsage: "FILE",
	Flags:     []cli.Flag{curveFlag, strengthFlag},
	Action: func(c *cli.Context) error {
		data, err := os.ReadFile(c.Args().First())
		if err != nil {
			return err
		}
		pw, err := promptPassword("passphrase: ")
		if err != nil {
			return err
		}
		id, err := parseCurve(c.String("curve"))
		if err != nil {
			return err
		}
		kp, err := edcrypt.KeyPairNew(pw, "", id, c.Int("strength"))
		if err != nil {
			return err
		}
		msg := edcrypt.NewMessage(data)
		if err := edcrypt.Sign(msg, kp, c.Int("strength")); err != nil {
			return err
		}
		zBytes := fixedWidthBytes(msg.Sig.Z, zWidth(id))
		fmt.Printf("h=%s\nz=%s\n", hex.EncodeToString(msg.Sig.H), hex.EncodeToString(zBytes))
		return nil
	},
}

var verifyCommand = &cli.Command{
	Name:      "verify",
	Usage:     "verify a signature over a file against a keyfile",
	ArgsUsage: "FILE KEYFILE H Z",
	Flags:     []cli.Flag{strengthFlag},
	Action: func(c *cli.Context) error {
		args := c.Args()
		if args.Len() < 4 {
			return cli.Exit("verify requires FILE KEYFILE H Z", 1)
		}
		data, err := os.ReadFile(args.Get(0))
		if err != nil {
			return err
		}
		kf, err := readKeyFile(args.Get(1))
		if err != nil {
			return err
		}
		h, err := hex.DecodeString(args.Get(2))
		if err != nil {
			return fmt.Errorf("bad h: %w", err)
		}
		zBytes, err := hex.DecodeString(args.Get(3))
		if err != nil {
			return fmt.Errorf("bad z: %w", err)
		}
		z := new(big.Int).SetBytes(zBytes)

		msg := edcrypt.NewMessage(data)
		msg.Sig = &edcrypt.Signature{H: h, Z: z}
		if err := edcrypt.Verify(msg, kf.publicKey(), c.Int("strength")); err != nil {
			return err
		}
		if *msg.OpResult {
			okColor.Println("good signature")
		} else {
			errColor.Println("signature does not verify")
			return cli.Exit("", 1)
		}
		return nil
	},
}

var encryptCommand = &cli.Command{
	Name:      "encrypt",
	Usage:     "password-based authenticated encryption of a file, in place",
	ArgsUsage: "FILE",
	Flags:     []cli.Flag{strengthFlag},
	Action: func(c *cli.Context) error {
		path := c.Args().First()
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		pw, err := promptPassword("passphrase: ")
		if err != nil {
			return err
		}
		msg := edcrypt.NewMessage(data)
		if err := edcrypt.PwEncrypt(msg, pw, c.Int("strength")); err != nil {
			return err
		}
		out := encodeCryptogram(msg)
		if err := os.WriteFile(path+".edcrypt", out, 0o600); err != nil {
			return err
		}
		okColor.Printf("wrote %s.edcrypt\n", path)
		return nil
	},
}

var decryptCommand = &cli.Command{
	Name:      "decrypt",
	Usage:     "decrypt a cryptogram written by encrypt",
	ArgsUsage: "FILE.edcrypt",
	Flags:     []cli.Flag{strengthFlag},
	Action: func(c *cli.Context) error {
		path := c.Args().First()
		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		msg, err := decodeCryptogram(raw)
		if err != nil {
			return err
		}
		pw, err := promptPassword("passphrase: ")
		if err != nil {
			return err
		}
		if err := edcrypt.PwDecrypt(msg, pw, c.Int("strength")); err != nil {
			return err
		}
		if !*msg.OpResult {
			errColor.Println("decryption failed: bad passphrase or corrupted file")
			return cli.Exit("", 1)
		}
		fmt.Print(string(msg.Data))
		return nil
	},
}
