// Package hcl_adapter reads problem instances written in HCL.
//
// A file may hold any number of instance blocks:
//
//	instance "warehouse" {
//	  durations = [[3, 4], [5, 2]]
//	  locations = [[1, 1], [2, 2]]
//
//	  deadline {
//	    task  = 2
//	    bound = 20
//	  }
//
//	  wait {
//	    task  = 2
//	    after = 1
//	    gap   = 1
//	  }
//
//	  solution {
//	    robots = [[1], [2]]
//	    order  = [1, 2]
//	  }
//	}
//
// Table attributes are evaluated as cty values and converted with the
// go-cty convert and gocty packages before they reach config.Instance.
package hcl_adapter
