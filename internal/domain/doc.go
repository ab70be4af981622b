// Package domain defines the core entities of the club website.
//
// Types here carry no behavior beyond simple derivations; persistence lives
// in the store package and business rules in the service packages. Nothing
// in this package may import from service/ or api/.
package domain
