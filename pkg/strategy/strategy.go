// Package strategy turns locators into the ordered (strategy, value) pairs
// handed to a WebDriver find_element call. It never performs the lookup
// itself; the element-lookup layer owns waiting and retries.
package strategy

import (
	"fmt"

	"github.com/devicelab-dev/locator/pkg/locator"
)

// Locator strategies understood by the UIAutomator2 server.
const (
	StrategyUiAutomator = "-android uiautomator"
	StrategyXPath       = "xpath"
)

// LocatorStrategy represents a single locator strategy with its value.
type LocatorStrategy struct {
	Strategy string
	Value    string
}

// Build converts a locator in any supported representation to the locator
// strategies to try in order (first match wins). Native UiSelector lookup is
// cheaper on device, so it comes first whenever the locator is fully
// expressible in UiSelector syntax; the XPath form is always present as the
// last entry.
func Build(input any) ([]LocatorStrategy, error) {
	conv := locator.New()
	sel, err := conv.Detect(input)
	if err != nil {
		return nil, err
	}

	var strategies []LocatorStrategy
	if ui, err := locator.EncodeUiSelector(sel, true); err == nil {
		strategies = append(strategies, LocatorStrategy{
			Strategy: StrategyUiAutomator,
			Value:    ui,
		})
	}

	xpath, err := locator.EncodeXPath(sel)
	if err != nil {
		return nil, fmt.Errorf("build xpath strategy: %w", err)
	}
	return append(strategies, LocatorStrategy{
		Strategy: StrategyXPath,
		Value:    xpath,
	}), nil
}

// First returns the preferred strategy for the locator.
func First(input any) (LocatorStrategy, error) {
	strategies, err := Build(input)
	if err != nil {
		return LocatorStrategy{}, err
	}
	return strategies[0], nil
}
