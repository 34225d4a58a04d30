// Package offers manages the offers of a user's market.
//
// Besides single offer create, edit and delete, the service synchronizes a
// market with the owner's inventory: the reconcile package plans the offer
// changes, the service validates preconditions, applies the plan in one
// transaction, stores the used parameters as the user's sync settings and then
// notifies or retracts wish notifications for the changed offers.
package offers
