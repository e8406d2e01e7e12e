package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Logo() g.Node {
	return Div(
		Class("flex items-center gap-2"),
		Span(Class("iconify size-5 text-primary"), g.Attr("data-icon", "lucide:aperture"), g.Attr("aria-hidden", "true")),
		Span(
			Class("font-bold text-xl"),
			g.Text("Northlight Studio"),
		),
	)
}

func convertIconName(iconClass string) string {
	parts := strings.Fields(iconClass)
	iconName := parts[0]
	return strings.Replace(iconName, "--", ":", 1)
}

func extractSizeClasses(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) > 1 {
		return strings.Join(parts[1:], " ")
	}
	return ""
}

func Icon(iconClass, ariaLabel string) g.Node {
	iconName := convertIconName(iconClass)
	sizeClasses := extractSizeClasses(iconClass)
	classes := "iconify inline-block"
	if sizeClasses != "" {
		classes = fmt.Sprintf("iconify inline-block %s", sizeClasses)
	}

	if ariaLabel != "" {
		return Span(
			Class(classes),
			g.Attr("data-icon", iconName),
			g.Attr("role", "img"),
			g.Attr("aria-label", ariaLabel),
		)
	}

	return Span(
		Class(classes),
		g.Attr("data-icon", iconName),
		g.Attr("aria-hidden", "true"),
	)
}

func IconBadge(icon, color string) g.Node {
	containerClass := fmt.Sprintf("inline-flex items-center justify-center shrink-0 select-none size-8 rounded-box bg-%s/10 border border-%s/20 transition-colors", color, color)
	iconName := convertIconName(icon)
	sizeClass := fmt.Sprintf("text-%s size-4", color)

	return Span(
		Class(containerClass),
		Span(
			Class(fmt.Sprintf("iconify %s", sizeClass)),
			g.Attr("data-icon", iconName),
		),
	)
}
