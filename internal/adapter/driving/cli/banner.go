package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/hashupinc/aws-cost-notifier/pkg/version"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
         ______           __     _   __      __  _ ____
        / ____/___  _____/ /_   / | / /___  / /_(_) __(_)__  _____
       / /   / __ \/ ___/ __/  /  |/ / __ \/ __/ / /_/ / _ \/ ___/
      / /___/ /_/ (__  ) /_   / /|  / /_/ / /_/ / __/ /  __/ /
      \____/\____/____/\__/  /_/ |_/\____/\__/_/_/ /_/\___/_/
        `
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(red(banner))

	formattedVersion := version.FormatVersion()
	fmt.Println(blue(fmt.Sprintf("AWS Cost Notifier CLI (v%s)", formattedVersion)))
}
