// Package pinclass assigns a functional category to every FPGA package pin
// based on its vendor pin function name.
//
// # Overview
//
// Categories are derived from an ordered rule table. Each rule is a
// case-insensitive regular expression anchored at the start of the pin
// function; the first rule that matches decides the category:
//
//	IO_L1P_T0L_N0_DBC_65  -> io
//	MGTREFCLK0P_224       -> mgt_refclk
//	MGTHRXP0_224          -> mgt_rx_tx
//	DONE_0, M0_0, D00_0   -> configuration
//	VP, VN, DXP, GNDADC   -> monitor
//	VCCINT, GND, MGTAVTT  -> power_gnd
//	NC                    -> not_connected
//
// A function that matches no rule is categorized as unknown. Unknown pins are
// never dropped: the Classifier keeps them in its result and logs each one so
// the rule table can be extended for new devices.
//
// # Usage
//
//	classifier := pinclass.NewClassifier(logger)
//	result := classifier.ClassifyAll(pins)
//	for _, pin := range result.Pins {
//		fmt.Printf("%s %s\n", pin.Record.PackagePin, pin.Category)
//	}
//
// Classify can be used directly when only the function name is known.
package pinclass
